package overview

import "github.com/emberstack/firedash/internal/ui/features/common"

// KPI is one headline number on the overview page.
type KPI struct {
	Label string
	Value string
}

// RecordRow is one formatted line of the raw-data table.
type RecordRow struct {
	Name       string
	Year       int
	State      string
	Cause      string
	Size       string
	Duration   string
	Discovered string
}

// ColumnMeta describes one dataset column in the schema table.
type ColumnMeta struct {
	Name     string
	Type     string
	Nullable bool
}

// View is the template model for the overview page.
type View struct {
	Title        string
	Sidebar      common.Sidebar
	KPIs         []KPI
	RowOptions   []int
	SelectedRows int
	Rows         []RecordRow
	Columns      []ColumnMeta
}
