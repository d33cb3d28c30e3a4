// Package ui provides the firedash web dashboard.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
	"github.com/emberstack/firedash/internal/ui/notifier"
	"github.com/emberstack/firedash/internal/ui/router"
)

// Server is the dashboard server.
type Server struct {
	store        *store.Store
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	dataPath     string
	logger       *slog.Logger
	metrics      *observability.Metrics
	registry     *prometheus.Registry
	notifier     *notifier.Notifier
}

// Config holds configuration for the dashboard server.
type Config struct {
	Store         *store.Store
	Port          int
	Watch         bool
	DataPath      string
	SessionSecret string
	Logger        *slog.Logger
	Metrics       *observability.Metrics
	Registry      *prometheus.Registry
}

// NewServer creates a new dashboard server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		store:        cfg.Store,
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		dataPath:     cfg.DataPath,
		logger:       logger,
		metrics:      cfg.Metrics,
		registry:     cfg.Registry,
		notifier:     notifier.New(),
	}
}

// Serve starts the dashboard server and blocks until the context is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dashboard", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.store, s.sessionStore, s.notifier, s.metrics, s.registry); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start dataset watcher if enabled
	if s.watch {
		eg.Go(func() error {
			return s.watchDataset(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchDataset reloads the store when the dataset file changes on disk.
// The parent directory is watched because editors and LFS checkouts
// replace the file instead of writing it in place.
func (s *Server) watchDataset(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.dataPath)
	if err := watcher.Add(dir); err != nil {
		// Keep serving the loaded data without reload-on-change.
		s.logger.Error("failed to watch dataset directory", "dir", dir, "error", err)
	}

	target := filepath.Clean(s.dataPath)

	// Debounce timer: CSV writers emit bursts of events.
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Info("dataset changed, reloading", "path", target)

				if err := s.store.Reload(ctx); err != nil {
					// The previous load keeps serving.
					s.logger.Error("reload failed", "error", err)
					return
				}

				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
