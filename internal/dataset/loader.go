package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing discovery and
// containment dates. The source mixes ISO and US-style layouts.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"1/2/2006",
	"1/2/2006 15:04",
	time.RFC3339,
}

// ParseDate parses a date string against the known layouts, returning
// the zero time when none match. Mirrors coercing parsers: bad dates
// become missing values, never row failures.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// LoadResult is the outcome of a CSV load.
type LoadResult struct {
	Records []Record
	Skipped int // malformed rows dropped during parsing
}

// Loader reads the reduced wildfire CSV into derived records.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger}
}

// LoadFile reads and parses the CSV at path.
func (l *Loader) LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	res, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return res, nil
}

// Load parses CSV content from r. The header row is required and must
// contain every canonical column; extra columns are ignored. Malformed
// rows are skipped and counted. A file with no usable rows is an error.
func (l *Loader) Load(r io.Reader) (*LoadResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows fail per-field, not per-file
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty dataset file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	res := &LoadResult{}
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			l.logger.Debug("skipping unreadable row", "line", line, "error", err)
			res.Skipped++
			continue
		}

		rec, err := parseRow(row, idx)
		if err != nil {
			l.logger.Debug("skipping malformed row", "line", line, "error", err)
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, Derive(rec))
	}

	if len(res.Records) == 0 {
		return nil, errors.New("dataset contains no usable rows")
	}
	if res.Skipped > 0 {
		l.logger.Warn("skipped malformed rows", "skipped", res.Skipped, "loaded", len(res.Records))
	}
	return res, nil
}

// columnIndex maps canonical column names to their header positions.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range Columns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseRow converts one CSV row into an underived Record. Identifier,
// year, and size must parse; dates coerce to zero and text fields pass
// through trimmed.
func parseRow(row []string, idx map[string]int) (Record, error) {
	field := func(name string) string {
		i := idx[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	objectID, err := strconv.ParseInt(field("OBJECTID"), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("OBJECTID: %w", err)
	}
	year, err := strconv.Atoi(field("FIRE_YEAR"))
	if err != nil {
		return Record{}, fmt.Errorf("FIRE_YEAR: %w", err)
	}
	size, err := strconv.ParseFloat(field("FIRE_SIZE"), 64)
	if err != nil {
		return Record{}, fmt.Errorf("FIRE_SIZE: %w", err)
	}

	return Record{
		ObjectID:    objectID,
		Year:        year,
		Cause:       field("STAT_CAUSE_DESCR"),
		SizeAcres:   size,
		State:       field("STATE"),
		FireName:    field("FIRE_NAME"),
		Discovery:   ParseDate(field("DATEGREG_DISCOVERY")),
		Containment: ParseDate(field("DATEGREG_CONT")),
	}, nil
}
