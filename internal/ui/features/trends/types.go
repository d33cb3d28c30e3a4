package trends

import (
	"github.com/emberstack/firedash/internal/ui/charts"
	"github.com/emberstack/firedash/internal/ui/features/common"
)

// View is the template model for the trends page.
type View struct {
	Title     string
	Sidebar   common.Sidebar
	Yearly    []charts.Snippet
	SeasonPie charts.Snippet
	SeasonBar charts.Snippet
	Monthly   charts.Snippet
}
