package common

import (
	"context"
	"slices"

	"github.com/emberstack/firedash/internal/dataset"
	"github.com/emberstack/firedash/internal/store"
)

// StateChoice is one entry in the state multi-select.
type StateChoice struct {
	Code     string
	Name     string
	Selected bool
}

// SeasonChoice is one entry in the season checkbox group.
type SeasonChoice struct {
	Name     string
	Selected bool
}

// Sidebar models the navigation and filter panel shared by all pages.
type Sidebar struct {
	CurrentPath  string
	FilteredRows int
	TotalRows    int
	Years        []int
	States       []StateChoice
	Seasons      []SeasonChoice
	From         int
	To           int
}

// BuildSidebar assembles the sidebar for one request. Selector options come
// from the dataset, the filtered row count from the active selection.
func BuildSidebar(ctx context.Context, st *store.Store, path string, fs FilterState) (Sidebar, error) {
	minYear, maxYear, err := st.YearRange(ctx)
	if err != nil {
		return Sidebar{}, err
	}
	options, err := st.StateOptions(ctx)
	if err != nil {
		return Sidebar{}, err
	}
	summary, err := st.Summary(ctx, fs.StoreFilter())
	if err != nil {
		return Sidebar{}, err
	}

	sb := Sidebar{
		CurrentPath:  path,
		FilteredRows: summary.Fires,
		TotalRows:    st.Stats().Rows,
		From:         fs.From,
		To:           fs.To,
	}
	if sb.From == 0 {
		sb.From = minYear
	}
	if sb.To == 0 {
		sb.To = maxYear
	}
	for y := minYear; y > 0 && y <= maxYear; y++ {
		sb.Years = append(sb.Years, y)
	}
	for _, opt := range options {
		sb.States = append(sb.States, StateChoice{
			Code:     opt.Code,
			Name:     opt.Name,
			Selected: slices.Contains(fs.States, opt.Code),
		})
	}
	for _, season := range dataset.Seasons {
		sb.Seasons = append(sb.Seasons, SeasonChoice{
			Name:     season,
			Selected: slices.Contains(fs.Seasons, season),
		})
	}
	return sb, nil
}
