package insights

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
	"github.com/emberstack/firedash/internal/ui/charts"
	"github.com/emberstack/firedash/internal/ui/features/common"
	"github.com/emberstack/firedash/internal/ui/templates"
)

const (
	topStates = 10
	topCauses = 8
)

// recommendations are the fixed prevention takeaways shown under the
// indicators.
var recommendations = []string{
	"Strengthen monitoring of high-risk areas during the summer months.",
	"Concentrate resources on the most affected states.",
	"Run prevention campaigns aimed at the leading causes.",
	"Improve response times to limit fire spread.",
}

var printer = message.NewPrinter(language.English)

// Handlers provides HTTP handlers for the insights page.
type Handlers struct {
	store        *store.Store
	sessionStore sessions.Store
	metrics      *observability.Metrics
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store, sessionStore sessions.Store, metrics *observability.Metrics) *Handlers {
	return &Handlers{store: st, sessionStore: sessionStore, metrics: metrics}
}

// InsightsPage renders state and cause rankings, the activity heatmap,
// headline indicators and the recommendations.
func (h *Handlers) InsightsPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	fs := common.ParseFilters(w, r, h.sessionStore)
	f := fs.StoreFilter()

	sidebar, err := common.BuildSidebar(ctx, h.store, "/insights", fs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	byFires, err := h.store.StateStats(ctx, f, store.ByFires, topStates)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	bySize, err := h.store.StateStats(ctx, f, store.ByTotalSize, topStates)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	causes, err := h.store.CauseStats(ctx, f, topCauses)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	cells, err := h.store.HeatmapCounts(ctx, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	findings, err := h.store.Insights(ctx, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := View{
		Title:           "Insights",
		Sidebar:         sidebar,
		StateFires:      charts.StateBarByFires(byFires),
		StateArea:       charts.StateBarByArea(bySize),
		TopStates:       buildStateRows(bySize),
		CausePie:        charts.CausePie(causes),
		CauseBar:        charts.CauseBar(causes),
		Heatmap:         charts.Heatmap(cells),
		Indicators:      buildIndicators(findings),
		Recommendations: recommendations,
	}
	if err := templates.Render(w, templates.Insights, view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.metrics.PageViews.WithLabelValues("insights").Inc()
	h.metrics.PageRenderDuration.WithLabelValues("insights").Observe(time.Since(start).Seconds())
}

func buildStateRows(stats []store.StateStat) []StateRow {
	rows := make([]StateRow, 0, len(stats))
	for i, s := range stats {
		name := s.StateName
		if name == "" {
			name = s.State
		}
		rows = append(rows, StateRow{
			Rank:     i + 1,
			Name:     name,
			Fires:    s.Fires,
			TotalKM2: s.TotalSizeKM2,
			AvgKM2:   s.AvgSizeKM2,
		})
	}
	return rows
}

func buildIndicators(in store.Insights) []Indicator {
	return []Indicator{
		{Label: "Peak Season", Value: in.PeakSeason, Detail: printer.Sprintf("%d fires", in.PeakSeasonFires)},
		{Label: "Most Affected State", Value: in.TopState, Detail: fmt.Sprintf("%.2f km² burned", in.TopStateKM2)},
		{Label: "Leading Cause", Value: in.TopCause, Detail: printer.Sprintf("%d fires", in.TopCauseFires)},
	}
}
