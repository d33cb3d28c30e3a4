package insights

import (
	"github.com/emberstack/firedash/internal/ui/charts"
	"github.com/emberstack/firedash/internal/ui/features/common"
)

// StateRow is one line of the most-affected-states table, ranked by
// total burned area.
type StateRow struct {
	Rank     int
	Name     string
	Fires    int
	TotalKM2 float64
	AvgKM2   float64
}

// Indicator is one highlighted finding above the recommendations.
type Indicator struct {
	Label  string
	Value  string
	Detail string
}

// View is the template model for the insights page.
type View struct {
	Title           string
	Sidebar         common.Sidebar
	StateFires      charts.Snippet
	StateArea       charts.Snippet
	TopStates       []StateRow
	CausePie        charts.Snippet
	CauseBar        charts.Snippet
	Heatmap         charts.Snippet
	Indicators      []Indicator
	Recommendations []string
}
