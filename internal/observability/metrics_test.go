package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.DatasetLoads.Inc()
	m.RowsSkipped.Add(3)
	m.DatasetRows.Set(42)
	m.PageViews.WithLabelValues("overview").Inc()
	m.QueryDuration.WithLabelValues("summary").Observe(0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetLoads))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RowsSkipped))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.DatasetRows))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageViews.WithLabelValues("overview")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["firedash_dataset_loads_total"])
	assert.True(t, names["firedash_query_duration_seconds"])
	assert.True(t, names["firedash_page_views_total"])
}

func TestNewMetricsForTesting(t *testing.T) {
	// Two instances must not collide in a shared registry sense.
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.DatasetLoads.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.DatasetLoads))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.DatasetLoads))
}
