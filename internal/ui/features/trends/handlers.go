package trends

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
	"github.com/emberstack/firedash/internal/ui/charts"
	"github.com/emberstack/firedash/internal/ui/features/common"
	"github.com/emberstack/firedash/internal/ui/templates"
)

// Handlers provides HTTP handlers for the trends page.
type Handlers struct {
	store        *store.Store
	sessionStore sessions.Store
	metrics      *observability.Metrics
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store, sessionStore sessions.Store, metrics *observability.Metrics) *Handlers {
	return &Handlers{store: st, sessionStore: sessionStore, metrics: metrics}
}

// TrendsPage renders the yearly, seasonal and monthly charts.
func (h *Handlers) TrendsPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	fs := common.ParseFilters(w, r, h.sessionStore)
	f := fs.StoreFilter()

	sidebar, err := common.BuildSidebar(ctx, h.store, "/trends", fs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	yearly, err := h.store.YearlySeries(ctx, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	seasonal, err := h.store.SeasonalStats(ctx, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	monthly, err := h.store.MonthlyCounts(ctx, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := View{
		Title:   "Trends",
		Sidebar: sidebar,
		Yearly: []charts.Snippet{
			charts.YearlyFires(yearly),
			charts.YearlyAvgDuration(yearly),
			charts.YearlyAvgSize(yearly),
			charts.YearlyTotalBurned(yearly),
		},
		SeasonPie: charts.SeasonalPie(seasonal),
		SeasonBar: charts.SeasonalBar(seasonal),
		Monthly:   charts.MonthlyLine(monthly),
	}
	if err := templates.Render(w, templates.Trends, view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.metrics.PageViews.WithLabelValues("trends").Inc()
	h.metrics.PageRenderDuration.WithLabelValues("trends").Observe(time.Since(start).Seconds())
}
