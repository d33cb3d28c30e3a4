// Package config provides shared configuration defaults for firedash.
// This package is decoupled from CLI concerns and can be used by the
// store and UI layers without importing flag or file handling.
package config

// Default configuration values.
const (
	DefaultDataPath = "data/fires.csv"
	DefaultTable    = "fires"
	DefaultPort     = 8787
)

// DefaultPreviewRows is the number of raw records shown on the overview
// page when no row count has been selected.
const DefaultPreviewRows = 10

// PreviewRowOptions are the row counts offered by the raw-data table
// selector.
var PreviewRowOptions = []int{10, 25, 50, 100}

// NormalizePreviewRows clamps a requested preview row count to the
// nearest allowed option. Unknown values fall back to the default.
func NormalizePreviewRows(n int) int {
	for _, opt := range PreviewRowOptions {
		if n == opt {
			return n
		}
	}
	return DefaultPreviewRows
}
