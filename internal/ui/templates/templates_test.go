package templates_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberstack/firedash/internal/store"
	"github.com/emberstack/firedash/internal/ui/charts"
	"github.com/emberstack/firedash/internal/ui/templates"
)

func sidebarData() map[string]any {
	return map[string]any{
		"CurrentPath":  "/",
		"FilteredRows": 12345,
		"TotalRows":    20000,
		"Years":        []int{1995, 1996},
		"States": []map[string]any{
			{"Code": "CA", "Name": "California", "Selected": true},
			{"Code": "OR", "Name": "Oregon", "Selected": false},
		},
		"Seasons": []map[string]any{
			{"Name": "Summer", "Selected": true},
			{"Name": "Fall", "Selected": false},
		},
		"From": 1995,
		"To":   1996,
	}
}

func TestOverviewRenders(t *testing.T) {
	data := map[string]any{
		"Title":   "Overview",
		"Sidebar": sidebarData(),
		"KPIs": []map[string]any{
			{"Label": "Total Fires", "Value": "12,345"},
			{"Label": "Avg Duration", "Value": "4.2 days"},
		},
		"RowOptions":   []int{10, 25, 50, 100},
		"SelectedRows": 25,
		"Rows": []map[string]any{
			{"Name": "RIDGE", "Year": 1995, "State": "CA", "Cause": "Lightning", "Size": "1.2 ha", "Duration": "3.0 days", "Discovered": "1995-07-04"},
		},
		"Columns": []map[string]any{
			{"Name": "FIRE_YEAR", "Type": "BIGINT", "Nullable": false},
		},
	}

	var buf bytes.Buffer
	err := templates.Render(&buf, templates.Overview, data)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Overview · firedash</title>")
	assert.Contains(t, out, "12,345 of 20,000 fires")
	assert.Contains(t, out, "Total Fires")
	assert.Contains(t, out, "California")
	assert.Contains(t, out, "RIDGE")
	assert.Contains(t, out, "FIRE_YEAR")
	assert.Contains(t, out, `<option value="25" selected>`)
	assert.Contains(t, out, `name="filters"`)
}

func TestTrendsRendersChartScripts(t *testing.T) {
	yearly := []store.YearlyStat{{Year: 1995, Fires: 10, TotalSizeKM2: 4}}
	seasonal := []store.SeasonalStat{{Season: "Summer", Fires: 7, AvgDurationDays: 5.1}}
	monthly := []store.MonthlyCount{{Month: 7, Fires: 9}}

	data := map[string]any{
		"Title":     "Trends",
		"Sidebar":   sidebarData(),
		"Yearly":    []charts.Snippet{charts.YearlyFires(yearly), charts.YearlyTotalBurned(yearly)},
		"SeasonPie": charts.SeasonalPie(seasonal),
		"SeasonBar": charts.SeasonalBar(seasonal),
		"Monthly":   charts.MonthlyLine(monthly),
	}

	var buf bytes.Buffer
	err := templates.Render(&buf, templates.Trends, data)
	require.NoError(t, err)

	out := buf.String()

	// Chart snippets are trusted HTML and must land unescaped.
	assert.Contains(t, out, "echarts.init")
	assert.NotContains(t, out, "&lt;script")
}

func TestInsightsRenders(t *testing.T) {
	states := []store.StateStat{{State: "CA", StateName: "California", Fires: 1892, TotalSizeKM2: 456.7, AvgSizeKM2: 0.241}}
	causes := []store.CauseStat{{Cause: "Lightning", Fires: 4021, TotalSizeKM2: 890.1}}
	cells := []store.HeatmapCell{{Year: 1995, Month: 7, Fires: 95}}

	data := map[string]any{
		"Title":      "Insights",
		"Sidebar":    sidebarData(),
		"StateFires": charts.StateBarByFires(states),
		"StateArea":  charts.StateBarByArea(states),
		"TopStates": []map[string]any{
			{"Rank": 1, "Name": "California", "Fires": 1892, "TotalKM2": 456.73, "AvgKM2": 0.241},
		},
		"CausePie": charts.CausePie(causes),
		"CauseBar": charts.CauseBar(causes),
		"Heatmap":  charts.Heatmap(cells),
		"Indicators": []map[string]any{
			{"Label": "Peak Season", "Value": "Summer", "Detail": "4,021 fires"},
		},
		"Recommendations": []string{"Improve response times to limit fire spread."},
	}

	var buf bytes.Buffer
	err := templates.Render(&buf, templates.Insights, data)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Most Affected States")
	assert.Contains(t, out, "456.7")
	assert.Contains(t, out, "0.24")
	assert.Contains(t, out, "1,892")
	assert.Contains(t, out, "Peak Season")
	assert.Contains(t, out, "Improve response times")
}
