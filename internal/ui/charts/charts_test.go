package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberstack/firedash/internal/store"
)

func yearlyFixture() []store.YearlyStat {
	return []store.YearlyStat{
		{Year: 1995, Fires: 120, AvgDurationDays: 3.5, AvgSizeKM2: 0.4, TotalSizeKM2: 48},
		{Year: 1996, Fires: 180, AvgDurationDays: 4.1, AvgSizeKM2: 0.7, TotalSizeKM2: 126},
	}
}

func TestYearlyCharts(t *testing.T) {
	stats := yearlyFixture()

	tests := []struct {
		name    string
		snippet Snippet
	}{
		{"fires", YearlyFires(stats)},
		{"average duration", YearlyAvgDuration(stats)},
		{"average size", YearlyAvgSize(stats)},
		{"total burned", YearlyTotalBurned(stats)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEmpty(t, tt.snippet.Element)
			require.NotEmpty(t, tt.snippet.Script)
			assert.Contains(t, string(tt.snippet.Script), "echarts.init")
			assert.Contains(t, string(tt.snippet.Script), "1995")
			assert.Contains(t, string(tt.snippet.Script), "1996")
		})
	}
}

func TestSeasonalCharts(t *testing.T) {
	stats := []store.SeasonalStat{
		{Season: "Winter", Fires: 40, AvgDurationDays: 2.1},
		{Season: "Spring", Fires: 90, AvgDurationDays: 3.0},
		{Season: "Summer", Fires: 210, AvgDurationDays: 5.4},
		{Season: "Fall", Fires: 60, AvgDurationDays: 2.8},
	}

	pie := SeasonalPie(stats)
	require.NotEmpty(t, pie.Element)
	assert.Contains(t, string(pie.Script), "Winter")
	assert.Contains(t, string(pie.Script), "Summer")

	bar := SeasonalBar(stats)
	require.NotEmpty(t, bar.Element)
	assert.Contains(t, string(bar.Script), "Summer")
	assert.Contains(t, string(bar.Script), "echarts.init")
}

func TestMonthlyLine(t *testing.T) {
	counts := []store.MonthlyCount{
		{Month: 1, Fires: 12},
		{Month: 7, Fires: 340},
	}

	got := MonthlyLine(counts)
	require.NotEmpty(t, got.Element)
	assert.Contains(t, string(got.Script), "Jan")
	assert.Contains(t, string(got.Script), "Jul")
	assert.Contains(t, string(got.Script), "echarts.init")
}

func TestStateBarsReverseRankOrder(t *testing.T) {
	stats := []store.StateStat{
		{State: "CA", StateName: "California", Fires: 1892, TotalSizeKM2: 456.7},
		{State: "GA", StateName: "Georgia", Fires: 1540, TotalSizeKM2: 120.3},
	}

	for _, snip := range []Snippet{StateBarByFires(stats), StateBarByArea(stats)} {
		script := string(snip.Script)
		ca := strings.Index(script, `"CA"`)
		ga := strings.Index(script, `"GA"`)
		require.GreaterOrEqual(t, ca, 0)
		require.GreaterOrEqual(t, ga, 0)

		// Rank 1 must render at the top of a horizontal bar, which means
		// it has to come last in the axis data.
		assert.Less(t, ga, ca)
	}
}

func TestCauseCharts(t *testing.T) {
	stats := []store.CauseStat{
		{Cause: "Lightning", Fires: 4021, TotalSizeKM2: 890.1},
		{Cause: "Debris Burning", Fires: 2210, TotalSizeKM2: 340.9},
	}

	pie := CausePie(stats)
	assert.Contains(t, string(pie.Script), "Lightning")

	bar := CauseBar(stats)
	script := string(bar.Script)
	assert.Contains(t, script, "Lightning")
	assert.Contains(t, script, "Debris Burning")
}

func TestHeatmap(t *testing.T) {
	cells := []store.HeatmapCell{
		{Year: 1995, Month: 1, Fires: 10},
		{Year: 1995, Month: 7, Fires: 95},
		{Year: 1996, Month: 7, Fires: 120},
	}

	got := Heatmap(cells)
	require.NotEmpty(t, got.Element)
	script := string(got.Script)
	assert.Contains(t, script, "visualMap")
	assert.Contains(t, script, "1995")
	assert.Contains(t, script, "1996")
	assert.Contains(t, script, "Jan")
	assert.Contains(t, script, "Dec")
}

func TestHeatmapEmpty(t *testing.T) {
	got := Heatmap(nil)
	require.NotEmpty(t, got.Element)
	assert.Contains(t, string(got.Script), "echarts.init")
}

func TestMonthShort(t *testing.T) {
	assert.Equal(t, "Jan", monthShort(1))
	assert.Equal(t, "Dec", monthShort(12))
	assert.Equal(t, "13", monthShort(13))
	assert.Equal(t, "0", monthShort(0))
}
