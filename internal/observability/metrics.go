// Package observability defines the Prometheus metrics exposed on the
// /metrics endpoint.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "firedash"

// Metrics holds the Prometheus counters, gauges, and histograms for
// dataset loading, query execution, and page serving.
type Metrics struct {
	DatasetLoads prometheus.Counter
	RowsSkipped  prometheus.Counter
	PageViews    *prometheus.CounterVec // label: page

	DatasetRows     prometheus.Gauge
	LoadedTimestamp prometheus.Gauge

	LoadDuration       prometheus.Histogram
	QueryDuration      *prometheus.HistogramVec // label: query
	PageRenderDuration *prometheus.HistogramVec // label: page
}

// NewMetrics creates the metric set and registers it with the given
// registerer, usually prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.DatasetLoads,
		m.RowsSkipped,
		m.PageViews,
		m.DatasetRows,
		m.LoadedTimestamp,
		m.LoadDuration,
		m.QueryDuration,
		m.PageRenderDuration,
	)
	return m
}

// NewMetricsForTesting creates an unregistered metric set to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Total dataset loads, including watch-triggered reloads.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_rows_skipped_total",
			Help:      "Total malformed CSV rows dropped during loads.",
		}),
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Dashboard page requests by page.",
		}, []string{"page"}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Rows staged by the most recent load.",
		}),
		LoadedTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time of the most recent successful load.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Duration of a complete parse-derive-stage cycle.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Aggregation query duration by query name.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"query"}),
		PageRenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Dashboard page render duration by page.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"page"}),
	}
}
