// Package system serves the operational endpoints: liveness, readiness
// and Prometheus metrics.
package system

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emberstack/firedash/internal/store"
)

// Handlers provides the operational endpoints.
type Handlers struct {
	store *store.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store) *Handlers {
	return &Handlers{store: st}
}

// Healthz reports process liveness. It says nothing about the dataset.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// Readyz reports 503 until the first dataset load completes, then the
// load id and row count of the data being served.
func (h *Handlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if !h.store.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "loading"})
		return
	}
	stats := h.store.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ready",
		"load_id":   stats.LoadID,
		"rows":      stats.Rows,
		"loaded_at": stats.LoadedAt.Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// SetupRoutes configures the operational routes.
func SetupRoutes(router chi.Router, st *store.Store, registry *prometheus.Registry) error {
	handlers := NewHandlers(st)

	router.Get("/healthz", handlers.Healthz)
	router.Get("/readyz", handlers.Readyz)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return nil
}
