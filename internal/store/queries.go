package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emberstack/firedash/internal/config"
	"github.com/emberstack/firedash/internal/dataset"
)

// Summary aggregates the filtered dataset's headline KPIs.
type Summary struct {
	Fires           int
	AvgDurationDays float64
	TotalSizeKM2    float64
	AvgSizeKM2      float64
}

// YearlyStat is one year's aggregate row.
type YearlyStat struct {
	Year            int
	Fires           int
	AvgDurationDays float64
	AvgSizeKM2      float64
	TotalSizeKM2    float64
}

// MonthlyCount is the fire count for one calendar month.
type MonthlyCount struct {
	Month int
	Fires int
}

// SeasonalStat is one season's aggregate row.
type SeasonalStat struct {
	Season          string
	Fires           int
	AvgDurationDays float64
}

// StateOrder selects the state ranking dimension.
type StateOrder string

const (
	// ByFires ranks states by fire count.
	ByFires StateOrder = "fires"
	// ByTotalSize ranks states by total burned area.
	ByTotalSize StateOrder = "total_size"
)

// StateStat is one state's aggregate row.
type StateStat struct {
	State        string
	StateName    string
	Fires        int
	TotalSizeKM2 float64
	AvgSizeKM2   float64
}

// CauseStat is one cause's aggregate row.
type CauseStat struct {
	Cause        string
	Fires        int
	TotalSizeKM2 float64
}

// HeatmapCell is the fire count for one year and month.
type HeatmapCell struct {
	Year  int
	Month int
	Fires int
}

// StateOption is one selectable state filter value.
type StateOption struct {
	Code string
	Name string
}

// Insights are the headline findings shown on the insights page.
type Insights struct {
	PeakSeason      string
	PeakSeasonFires int
	TopState        string
	TopStateKM2     float64
	TopCause        string
	TopCauseFires   int
}

// TableInfo names a staged table or view.
type TableInfo struct {
	Name string
	Type string // BASE TABLE or VIEW
}

// ColumnInfo describes one staged column.
type ColumnInfo struct {
	Name     string
	Type     string
	Nullable bool
	Position int
}

// QueryResult holds an ad-hoc query's columns and fully read rows.
type QueryResult struct {
	Columns []string
	Rows    [][]any
}

// Summary returns the headline KPIs over the filtered dataset.
func (s *Store) Summary(ctx context.Context, f Filter) (Summary, error) {
	db, release, err := s.reader()
	if err != nil {
		return Summary{}, err
	}
	defer release()
	defer s.observe("summary", s.clock.Now())

	where, args := f.where()
	query := `SELECT COUNT(*),
		COALESCE(AVG(duration_days), 0),
		COALESCE(SUM(size_km2), 0),
		COALESCE(AVG(size_km2), 0)
		FROM fires` + where

	var out Summary
	row := db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&out.Fires, &out.AvgDurationDays, &out.TotalSizeKM2, &out.AvgSizeKM2); err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}
	return out, nil
}

// YearlySeries returns per-year aggregates in ascending year order.
func (s *Store) YearlySeries(ctx context.Context, f Filter) ([]YearlyStat, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()
	defer s.observe("yearly_series", s.clock.Now())

	where, args := f.where()
	query := `SELECT fire_year, COUNT(*),
		COALESCE(AVG(duration_days), 0),
		COALESCE(AVG(size_km2), 0),
		COALESCE(SUM(size_km2), 0)
		FROM fires` + where + `
		GROUP BY fire_year
		ORDER BY fire_year`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("yearly series: %w", err)
	}
	defer rows.Close()

	var out []YearlyStat
	for rows.Next() {
		var y YearlyStat
		if err := rows.Scan(&y.Year, &y.Fires, &y.AvgDurationDays, &y.AvgSizeKM2, &y.TotalSizeKM2); err != nil {
			return nil, fmt.Errorf("yearly series: %w", err)
		}
		out = append(out, y)
	}
	return out, rows.Err()
}

// MonthlyCounts returns fire counts per calendar month, ascending.
// Rows without a discovery date are excluded.
func (s *Store) MonthlyCounts(ctx context.Context, f Filter) ([]MonthlyCount, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()
	defer s.observe("monthly_counts", s.clock.Now())

	where, args := f.where("month IS NOT NULL")
	query := `SELECT month, COUNT(*) FROM fires` + where + `
		GROUP BY month
		ORDER BY month`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("monthly counts: %w", err)
	}
	defer rows.Close()

	var out []MonthlyCount
	for rows.Next() {
		var m MonthlyCount
		if err := rows.Scan(&m.Month, &m.Fires); err != nil {
			return nil, fmt.Errorf("monthly counts: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SeasonalStats returns per-season aggregates in calendar order
// starting at winter. Seasons absent from the filtered data are
// omitted.
func (s *Store) SeasonalStats(ctx context.Context, f Filter) ([]SeasonalStat, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()
	defer s.observe("seasonal_stats", s.clock.Now())

	where, args := f.where("season IS NOT NULL")
	query := `SELECT season, COUNT(*),
		COALESCE(AVG(duration_days), 0)
		FROM fires` + where + `
		GROUP BY season`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("seasonal stats: %w", err)
	}
	defer rows.Close()

	bySeason := make(map[string]SeasonalStat, 4)
	for rows.Next() {
		var st SeasonalStat
		if err := rows.Scan(&st.Season, &st.Fires, &st.AvgDurationDays); err != nil {
			return nil, fmt.Errorf("seasonal stats: %w", err)
		}
		bySeason[st.Season] = st
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]SeasonalStat, 0, len(bySeason))
	for _, season := range dataset.Seasons {
		if st, ok := bySeason[season]; ok {
			out = append(out, st)
		}
	}
	return out, nil
}

// StateStats returns per-state aggregates ranked by the given order,
// descending. A positive limit keeps only the top rows.
func (s *Store) StateStats(ctx context.Context, f Filter, order StateOrder, limit int) ([]StateStat, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()
	defer s.observe("state_stats", s.clock.Now())

	orderCol := "fires"
	if order == ByTotalSize {
		orderCol = "total_size_km2"
	}

	where, args := f.where()
	query := `SELECT state, state_name, COUNT(*) AS fires,
		COALESCE(SUM(size_km2), 0) AS total_size_km2,
		COALESCE(AVG(size_km2), 0) AS avg_size_km2
		FROM fires` + where + `
		GROUP BY state, state_name
		ORDER BY ` + orderCol + ` DESC`
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("state stats: %w", err)
	}
	defer rows.Close()

	var out []StateStat
	for rows.Next() {
		var st StateStat
		if err := rows.Scan(&st.State, &st.StateName, &st.Fires, &st.TotalSizeKM2, &st.AvgSizeKM2); err != nil {
			return nil, fmt.Errorf("state stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// CauseStats returns per-cause counts, most frequent first. A positive
// limit keeps only the top rows.
func (s *Store) CauseStats(ctx context.Context, f Filter, limit int) ([]CauseStat, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()
	defer s.observe("cause_stats", s.clock.Now())

	where, args := f.where()
	query := `SELECT cause, COUNT(*) AS fires,
		COALESCE(SUM(size_km2), 0)
		FROM fires` + where + `
		GROUP BY cause
		ORDER BY fires DESC`
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("cause stats: %w", err)
	}
	defer rows.Close()

	var out []CauseStat
	for rows.Next() {
		var c CauseStat
		if err := rows.Scan(&c.Cause, &c.Fires, &c.TotalSizeKM2); err != nil {
			return nil, fmt.Errorf("cause stats: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// HeatmapCounts returns fire counts per (year, month) cell, ordered by
// year then month. Rows without a discovery date are excluded.
func (s *Store) HeatmapCounts(ctx context.Context, f Filter) ([]HeatmapCell, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()
	defer s.observe("heatmap_counts", s.clock.Now())

	where, args := f.where("month IS NOT NULL")
	query := `SELECT fire_year, month, COUNT(*) FROM fires` + where + `
		GROUP BY fire_year, month
		ORDER BY fire_year, month`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("heatmap counts: %w", err)
	}
	defer rows.Close()

	var out []HeatmapCell
	for rows.Next() {
		var c HeatmapCell
		if err := rows.Scan(&c.Year, &c.Month, &c.Fires); err != nil {
			return nil, fmt.Errorf("heatmap counts: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Records returns the first limit raw records of the filtered dataset
// in source order, with derived fields recomputed.
func (s *Store) Records(ctx context.Context, f Filter, limit int) ([]dataset.Record, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()
	defer s.observe("records", s.clock.Now())

	if limit <= 0 {
		limit = config.DefaultPreviewRows
	}

	where, args := f.where()
	query := `SELECT object_id, fire_year, cause, size_acres, state, discovery, containment, fire_name
		FROM fires` + where + `
		ORDER BY object_id
		LIMIT ?`
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}
	defer rows.Close()

	var out []dataset.Record
	for rows.Next() {
		var (
			rec                    dataset.Record
			discovery, containment sql.NullTime
		)
		if err := rows.Scan(&rec.ObjectID, &rec.Year, &rec.Cause, &rec.SizeAcres,
			&rec.State, &discovery, &containment, &rec.FireName); err != nil {
			return nil, fmt.Errorf("records: %w", err)
		}
		rec.Discovery = discovery.Time
		rec.Containment = containment.Time
		out = append(out, dataset.Derive(rec))
	}
	return out, rows.Err()
}

// Columns returns the staged column metadata for a table or view.
func (s *Store) Columns(ctx context.Context, table string) ([]ColumnInfo, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()

	query := `SELECT column_name, data_type, is_nullable, ordinal_position
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position`

	rows, err := db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}
	defer rows.Close()

	var out []ColumnInfo
	for rows.Next() {
		var (
			c        ColumnInfo
			nullable string
		)
		if err := rows.Scan(&c.Name, &c.Type, &nullable, &c.Position); err != nil {
			return nil, fmt.Errorf("columns of %s: %w", table, err)
		}
		c.Nullable = nullable == "YES"
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("table %s not found", table)
	}
	return out, nil
}

// Tables lists the staged tables and views.
func (s *Store) Tables(ctx context.Context) ([]TableInfo, error) {
	return s.listTables(ctx, false)
}

// Views lists the analytical views only.
func (s *Store) Views(ctx context.Context) ([]TableInfo, error) {
	return s.listTables(ctx, true)
}

func (s *Store) listTables(ctx context.Context, viewsOnly bool) ([]TableInfo, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()

	query := `SELECT table_name, table_type
		FROM information_schema.tables
		WHERE table_schema = 'main'`
	if viewsOnly {
		query += ` AND table_type = 'VIEW'`
	}
	query += ` ORDER BY table_name`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var out []TableInfo
	for rows.Next() {
		var t TableInfo
		if err := rows.Scan(&t.Name, &t.Type); err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// YearRange returns the dataset's minimum and maximum fire year,
// unfiltered. Used to populate the year filter bounds.
func (s *Store) YearRange(ctx context.Context) (int, int, error) {
	db, release, err := s.reader()
	if err != nil {
		return 0, 0, err
	}
	defer release()

	var from, to int
	row := db.QueryRowContext(ctx, `SELECT COALESCE(MIN(fire_year), 0), COALESCE(MAX(fire_year), 0) FROM fires`)
	if err := row.Scan(&from, &to); err != nil {
		return 0, 0, fmt.Errorf("year range: %w", err)
	}
	return from, to, nil
}

// StateOptions returns the distinct states present in the dataset,
// ordered by code. Used to populate the state filter.
func (s *Store) StateOptions(ctx context.Context) ([]StateOption, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT state, state_name FROM fires ORDER BY state`)
	if err != nil {
		return nil, fmt.Errorf("state options: %w", err)
	}
	defer rows.Close()

	var out []StateOption
	for rows.Next() {
		var o StateOption
		if err := rows.Scan(&o.Code, &o.Name); err != nil {
			return nil, fmt.Errorf("state options: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Insights returns the peak season by count, the most affected state
// by burned area, and the leading cause by count over the filtered
// dataset.
func (s *Store) Insights(ctx context.Context, f Filter) (Insights, error) {
	var out Insights

	seasonal, err := s.SeasonalStats(ctx, f)
	if err != nil {
		return out, err
	}
	for _, st := range seasonal {
		if st.Fires > out.PeakSeasonFires {
			out.PeakSeason = st.Season
			out.PeakSeasonFires = st.Fires
		}
	}

	states, err := s.StateStats(ctx, f, ByTotalSize, 1)
	if err != nil {
		return out, err
	}
	if len(states) > 0 {
		out.TopState = states[0].StateName
		out.TopStateKM2 = states[0].TotalSizeKM2
	}

	causes, err := s.CauseStats(ctx, f, 1)
	if err != nil {
		return out, err
	}
	if len(causes) > 0 {
		out.TopCause = causes[0].Cause
		out.TopCauseFires = causes[0].Fires
	}
	return out, nil
}

// Query runs an ad-hoc SQL statement against the staged database and
// drains the result. Intended for the query command and REPL; the
// staged data is read-only by convention, not enforcement.
func (s *Store) Query(ctx context.Context, query string, args ...any) (*QueryResult, error) {
	return s.runQuery(ctx, "adhoc", query, args...)
}

// Search returns fires whose name, cause, or state matches the term,
// case-insensitively, largest first.
func (s *Store) Search(ctx context.Context, term string, limit int) (*QueryResult, error) {
	if limit <= 0 {
		limit = 25
	}
	pattern := "%" + term + "%"
	query := `SELECT object_id, fire_year, fire_name, cause, state, state_name, size_acres, size_km2
		FROM fires
		WHERE fire_name ILIKE ? OR cause ILIKE ? OR state ILIKE ? OR state_name ILIKE ?
		ORDER BY size_acres DESC
		LIMIT ?`
	return s.runQuery(ctx, "search", query, pattern, pattern, pattern, pattern, limit)
}

func (s *Store) runQuery(ctx context.Context, name, query string, args ...any) (*QueryResult, error) {
	db, release, err := s.reader()
	if err != nil {
		return nil, err
	}
	defer release()
	defer s.observe(name, s.clock.Now())

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	return collectRows(rows)
}

// collectRows drains a result set into memory, converting []byte
// values to strings for display.
func collectRows(rows *sql.Rows) (*QueryResult, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	res := &QueryResult{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		res.Rows = append(res.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return res, nil
}
