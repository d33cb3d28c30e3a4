package dataset

import "time"

// Columns is the canonical column set of the reduced dataset, in the
// order the reduce command writes them.
var Columns = []string{
	"OBJECTID",
	"FIRE_YEAR",
	"STAT_CAUSE_DESCR",
	"FIRE_SIZE",
	"STATE",
	"DATEGREG_DISCOVERY",
	"DATEGREG_CONT",
	"FIRE_NAME",
}

// Record is one wildfire with its derived analytical fields. Records
// are immutable after load; reloads replace the whole set.
type Record struct {
	ObjectID  int64
	Year      int
	Cause     string
	SizeAcres float64
	State     string
	FireName  string

	// Zero when the source value is missing or unparseable.
	Discovery   time.Time
	Containment time.Time

	// Derived by Derive.
	SizeKM2      float64
	StateName    string
	Month        int // 1-12, 0 when Discovery is zero
	Day          int
	Weekday      time.Weekday // meaningful only when Discovery is set
	Season       string
	DurationDays *int
	SizeClass    string
}

// HasDiscovery reports whether the discovery date was parseable.
func (r Record) HasDiscovery() bool {
	return !r.Discovery.IsZero()
}

// WeekdayName returns the discovery weekday name, empty without a
// discovery date.
func (r Record) WeekdayName() string {
	if !r.HasDiscovery() {
		return ""
	}
	return r.Weekday.String()
}
