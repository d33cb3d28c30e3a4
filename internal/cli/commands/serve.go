package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/emberstack/firedash/internal/cli/config"
	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
	"github.com/emberstack/firedash/internal/ui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the firedash dashboard",
		Long: `Start a local web server providing the wildfire analytics dashboard.

The dashboard provides:
- Overview with headline figures and raw records
- Yearly, seasonal, and monthly trend charts
- State, cause, and heatmap insights
- Live reload when the dataset file changes`,
		Example: `  # Start the dashboard on the default port
  firedash serve

  # Start on a custom port
  firedash serve --port 3000

  # Start without auto-opening the browser
  firedash serve --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8787)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Reload when the dataset file changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	// Get UI config with defaults
	uiCfg := cfg.GetUIConfig()

	// CLI flags override config file
	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := uiCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	if err := cfg.ValidateDataFile(); err != nil {
		return err
	}
	if err := applyStateNames(cfg); err != nil {
		return err
	}

	// The dashboard gets its own registry so metrics stay scoped to
	// this process
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	st := store.New(store.Config{
		Path:    cfg.Data,
		Logger:  logger,
		Metrics: metrics,
	})
	defer func() { _ = st.Close() }()

	fmt.Println("Loading dataset...")
	if err := st.LoadFile(cmd.Context()); err != nil {
		return err
	}
	stats := st.Stats()
	fmt.Printf("Loaded %d records from %s\n", stats.Rows, cfg.Data)

	// Create and start UI server
	serverCfg := ui.Config{
		Store:         st,
		Port:          port,
		Watch:         watch,
		DataPath:      cfg.Data,
		SessionSecret: generateSessionSecret(),
		Logger:        logger,
		Metrics:       metrics,
		Registry:      registry,
	}

	server := ui.NewServer(serverCfg)

	// Open browser if configured
	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Starting dashboard on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// generateSessionSecret returns the cookie auth key.
func generateSessionSecret() string {
	secret := os.Getenv("FIREDASH_SESSION_SECRET")
	if secret == "" {
		// Default secret for development (nolint:gosec)
		secret = "firedash-dev-secret-change-in-production" //nolint:gosec
	}
	return secret
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
