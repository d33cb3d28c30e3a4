// Package insights ranks where fires hit hardest and why: state and
// cause rankings, a year-by-month heatmap, and headline indicators with
// prevention recommendations.
package insights

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
)

// SetupRoutes configures routes for the insights feature.
func SetupRoutes(router chi.Router, st *store.Store, sessionStore sessions.Store, metrics *observability.Metrics) error {
	handlers := NewHandlers(st, sessionStore, metrics)

	router.Get("/insights", handlers.InsightsPage)

	return nil
}
