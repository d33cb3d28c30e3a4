package dataset

import (
	"math"
	"time"
)

// acresToKM2 is the conversion factor from acres to square kilometers.
const acresToKM2 = 0.00404686

// maxDurationDays is the outlier cutoff for fire durations. Spans over
// a year in the source are data-entry artifacts, not real incidents.
const maxDurationDays = 365

// Seasons lists the season labels in calendar order starting at winter.
var Seasons = []string{"Winter", "Spring", "Summer", "Fall"}

// AcresToKM2 converts a fire size in acres to square kilometers,
// rounded to 4 decimals.
func AcresToKM2(acres float64) float64 {
	return math.Round(acres*acresToKM2*1e4) / 1e4
}

// Season maps a calendar month to its meteorological season.
func Season(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	case time.September, time.October, time.November:
		return "Fall"
	default:
		return ""
	}
}

// SizeClass returns the NWCG size class letter for a fire size in
// acres: A ≤0.25, B ≤9.9, C ≤99.9, D ≤299, E ≤999, F ≤4999, G beyond.
func SizeClass(acres float64) string {
	switch {
	case acres <= 0.25:
		return "A"
	case acres <= 9.9:
		return "B"
	case acres <= 99.9:
		return "C"
	case acres <= 299:
		return "D"
	case acres <= 999:
		return "E"
	case acres <= 4999:
		return "F"
	default:
		return "G"
	}
}

// DurationDays returns the whole-day span from discovery to
// containment. Nil when either date is missing, when the span is
// negative, or when it exceeds the outlier cutoff. A same-day
// containment yields zero, which is kept.
func DurationDays(discovery, containment time.Time) *int {
	if discovery.IsZero() || containment.IsZero() {
		return nil
	}
	days := int(containment.Sub(discovery).Hours() / 24)
	if days < 0 || days > maxDurationDays {
		return nil
	}
	return &days
}

// Derive fills the computed fields of a parsed record: burned area,
// state name, size class, duration, and the discovery-date breakdown.
// The input record is returned with its derived fields set.
func Derive(r Record) Record {
	r.SizeKM2 = AcresToKM2(r.SizeAcres)
	r.StateName = StateName(r.State)
	r.SizeClass = SizeClass(r.SizeAcres)
	r.DurationDays = DurationDays(r.Discovery, r.Containment)
	if !r.Discovery.IsZero() {
		r.Month = int(r.Discovery.Month())
		r.Day = r.Discovery.Day()
		r.Weekday = r.Discovery.Weekday()
		r.Season = Season(r.Discovery.Month())
	}
	return r
}
