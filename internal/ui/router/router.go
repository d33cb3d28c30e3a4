// Package router wires the dashboard's routes onto the HTTP mux.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
	insightsFeature "github.com/emberstack/firedash/internal/ui/features/insights"
	overviewFeature "github.com/emberstack/firedash/internal/ui/features/overview"
	systemFeature "github.com/emberstack/firedash/internal/ui/features/system"
	trendsFeature "github.com/emberstack/firedash/internal/ui/features/trends"
	"github.com/emberstack/firedash/internal/ui/notifier"
	"github.com/emberstack/firedash/internal/ui/resources"
)

// SetupRoutes configures all routes for the dashboard server.
func SetupRoutes(
	router chi.Router,
	st *store.Store,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	metrics *observability.Metrics,
	registry *prometheus.Registry,
) error {
	setupReload(router, notify)

	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	if err := overviewFeature.SetupRoutes(router, st, sessionStore, metrics); err != nil {
		return err
	}

	if err := trendsFeature.SetupRoutes(router, st, sessionStore, metrics); err != nil {
		return err
	}

	if err := insightsFeature.SetupRoutes(router, st, sessionStore, metrics); err != nil {
		return err
	}

	if err := systemFeature.SetupRoutes(router, st, registry); err != nil {
		return err
	}

	return nil
}

// setupReload registers the SSE endpoint every page subscribes to. When a
// fresh dataset load lands, connected pages are told to refresh.
func setupReload(router chi.Router, notify *notifier.Notifier) {
	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)

		updates := notify.Subscribe()
		defer notify.Unsubscribe(updates)

		for {
			select {
			case <-r.Context().Done():
				return
			case <-updates:
				if err := sse.ExecuteScript("window.location.reload()"); err != nil {
					return
				}
			}
		}
	})
}
