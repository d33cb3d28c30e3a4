// Package overview provides the dashboard's landing page: headline KPIs,
// a raw-data preview and the dataset schema.
package overview

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
)

// SetupRoutes configures routes for the overview feature.
func SetupRoutes(router chi.Router, st *store.Store, sessionStore sessions.Store, metrics *observability.Metrics) error {
	handlers := NewHandlers(st, sessionStore, metrics)

	router.Get("/", handlers.OverviewPage)

	return nil
}
