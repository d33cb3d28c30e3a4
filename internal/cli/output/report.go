package output

// SummaryInfo is the aggregate block of a statistics report.
type SummaryInfo struct {
	Fires           int     `json:"fires"`
	AvgDurationDays float64 `json:"avg_duration_days"`
	TotalAreaKM2    float64 `json:"total_area_km2"`
	AvgAreaKM2      float64 `json:"avg_area_km2"`
}

// StateInfo is one ranked state in a statistics report.
type StateInfo struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Fires        int     `json:"fires"`
	TotalAreaKM2 float64 `json:"total_area_km2"`
	AvgAreaKM2   float64 `json:"avg_area_km2"`
}

// CauseInfo is one ranked cause in a statistics report.
type CauseInfo struct {
	Cause        string  `json:"cause"`
	Fires        int     `json:"fires"`
	TotalAreaKM2 float64 `json:"total_area_km2"`
}

// StatsOutput is the machine-readable statistics report.
type StatsOutput struct {
	Summary SummaryInfo `json:"summary"`
	States  []StateInfo `json:"top_states"`
	Causes  []CauseInfo `json:"top_causes"`
}

// VersionOutput is the machine-readable version report.
type VersionOutput struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// ReduceOutput is the machine-readable dataset reduction report.
type ReduceOutput struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Method      string `json:"method"`
	MinYear     int    `json:"min_year"`
	RowsBefore  int64  `json:"rows_before"`
	RowsAfter   int64  `json:"rows_after"`
	BytesBefore int64  `json:"bytes_before"`
	BytesAfter  int64  `json:"bytes_after"`
}
