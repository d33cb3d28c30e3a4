package dataset

import "fmt"

// Square-meter thresholds for the adaptive area unit.
const (
	hectareInM2 = 10_000
	km2InM2     = 1_000_000
)

// FormatArea renders an area given in square meters with an adaptive
// unit: square meters below one hectare, hectares up to one square
// kilometer, square kilometers beyond.
func FormatArea(m2 float64) string {
	switch {
	case m2 < hectareInM2:
		return fmt.Sprintf("%.0f m²", m2)
	case m2 <= km2InM2:
		return fmt.Sprintf("%.1f ha", m2/hectareInM2)
	default:
		return fmt.Sprintf("%.2f km²", m2/km2InM2)
	}
}

// FormatAreaKM2 renders an area given in square kilometers.
func FormatAreaKM2(km2 float64) string {
	return FormatArea(km2 * km2InM2)
}
