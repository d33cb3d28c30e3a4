package overview

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/emberstack/firedash/internal/config"
	"github.com/emberstack/firedash/internal/dataset"
	"github.com/emberstack/firedash/internal/observability"
	"github.com/emberstack/firedash/internal/store"
	"github.com/emberstack/firedash/internal/ui/features/common"
	"github.com/emberstack/firedash/internal/ui/templates"
)

var printer = message.NewPrinter(language.English)

// Handlers provides HTTP handlers for the overview page.
type Handlers struct {
	store        *store.Store
	sessionStore sessions.Store
	metrics      *observability.Metrics
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store, sessionStore sessions.Store, metrics *observability.Metrics) *Handlers {
	return &Handlers{store: st, sessionStore: sessionStore, metrics: metrics}
}

// OverviewPage renders the KPIs, the raw-data preview and the dataset schema.
func (h *Handlers) OverviewPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	fs := common.ParseFilters(w, r, h.sessionStore)
	f := fs.StoreFilter()

	summary, err := h.store.Summary(ctx, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sidebar, err := common.BuildSidebar(ctx, h.store, "/", fs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	records, err := h.store.Records(ctx, f, fs.PreviewRows())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	columns, err := h.store.Columns(ctx, store.Table)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := View{
		Title:        "Overview",
		Sidebar:      sidebar,
		KPIs:         buildKPIs(summary),
		RowOptions:   config.PreviewRowOptions,
		SelectedRows: fs.PreviewRows(),
		Rows:         buildRows(records),
		Columns:      buildColumns(columns),
	}
	if err := templates.Render(w, templates.Overview, view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.metrics.PageViews.WithLabelValues("overview").Inc()
	h.metrics.PageRenderDuration.WithLabelValues("overview").Observe(time.Since(start).Seconds())
}

func buildKPIs(s store.Summary) []KPI {
	return []KPI{
		{Label: "Total Fires", Value: printer.Sprintf("%d", s.Fires)},
		{Label: "Avg Duration", Value: fmt.Sprintf("%.1f days", s.AvgDurationDays)},
		{Label: "Total Burned", Value: fmt.Sprintf("%.2f km²", s.TotalSizeKM2)},
		{Label: "Avg Fire Size", Value: fmt.Sprintf("%.2f km²", s.AvgSizeKM2)},
	}
}

func buildRows(records []dataset.Record) []RecordRow {
	rows := make([]RecordRow, 0, len(records))
	for _, rec := range records {
		row := RecordRow{
			Name:  rec.FireName,
			Year:  rec.Year,
			State: rec.State,
			Cause: rec.Cause,
			Size:  dataset.FormatAreaKM2(rec.SizeKM2),
		}
		if row.Name == "" {
			row.Name = "(unnamed)"
		}
		if rec.DurationDays != nil {
			row.Duration = fmt.Sprintf("%d days", *rec.DurationDays)
		}
		if !rec.Discovery.IsZero() {
			row.Discovered = rec.Discovery.Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return rows
}

func buildColumns(columns []store.ColumnInfo) []ColumnMeta {
	out := make([]ColumnMeta, 0, len(columns))
	for _, c := range columns {
		out = append(out, ColumnMeta{Name: c.Name, Type: c.Type, Nullable: c.Nullable})
	}
	return out
}
