// Package trends charts how fire activity evolves over time: per year,
// per season and per calendar month.
package trends

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
)

// SetupRoutes configures routes for the trends feature.
func SetupRoutes(router chi.Router, st *store.Store, sessionStore sessions.Store, metrics *observability.Metrics) error {
	handlers := NewHandlers(st, sessionStore, metrics)

	router.Get("/trends", handlers.TrendsPage)

	return nil
}
