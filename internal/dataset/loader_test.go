package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `OBJECTID,FIRE_YEAR,STAT_CAUSE_DESCR,FIRE_SIZE,STATE,DATEGREG_DISCOVERY,DATEGREG_CONT,FIRE_NAME
1,2005,Lightning,1000,CA,2005-08-10,2005-08-15,POWER
2,2004,Arson,0.2,GA,2004-01-03,2004-01-03,
3,2015,Debris Burning,55,TX,,,BRUSH
`

func TestLoaderLoad(t *testing.T) {
	t.Run("parses and derives rows", func(t *testing.T) {
		res, err := NewLoader(nil).Load(strings.NewReader(fixtureCSV))
		require.NoError(t, err)
		require.Len(t, res.Records, 3)
		assert.Zero(t, res.Skipped)

		power := res.Records[0]
		assert.Equal(t, int64(1), power.ObjectID)
		assert.Equal(t, 2005, power.Year)
		assert.Equal(t, "Lightning", power.Cause)
		assert.Equal(t, "California", power.StateName)
		assert.Equal(t, "Summer", power.Season)
		assert.Equal(t, "F", power.SizeClass)
		require.NotNil(t, power.DurationDays)
		assert.Equal(t, 5, *power.DurationDays)

		brush := res.Records[2]
		assert.True(t, brush.Discovery.IsZero())
		assert.Empty(t, brush.Season)
		assert.Nil(t, brush.DurationDays)
	})

	t.Run("reordered and extra columns", func(t *testing.T) {
		csv := "FIRE_NAME,STATE,OBJECTID,FIRE_YEAR,STAT_CAUSE_DESCR,FIRE_SIZE,DATEGREG_DISCOVERY,DATEGREG_CONT,IGNORED\n" +
			"POWER,CA,1,2005,Lightning,1000,2005-08-10,2005-08-15,x\n"

		res, err := NewLoader(nil).Load(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, res.Records, 1)
		assert.Equal(t, "POWER", res.Records[0].FireName)
		assert.Equal(t, 2005, res.Records[0].Year)
	})

	t.Run("skips malformed rows", func(t *testing.T) {
		csv := fixtureCSV +
			"bad-id,2005,Lightning,10,CA,2005-08-10,2005-08-15,X\n" +
			"4,not-a-year,Lightning,10,CA,2005-08-10,2005-08-15,X\n" +
			"5,2005,Lightning,huge,CA,2005-08-10,2005-08-15,X\n"

		res, err := NewLoader(nil).Load(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Len(t, res.Records, 3)
		assert.Equal(t, 3, res.Skipped)
	})

	t.Run("missing columns", func(t *testing.T) {
		_, err := NewLoader(nil).Load(strings.NewReader("OBJECTID,FIRE_YEAR\n1,2005\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing columns")
		assert.Contains(t, err.Error(), "FIRE_SIZE")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := NewLoader(nil).Load(strings.NewReader(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty dataset file")
	})

	t.Run("header only", func(t *testing.T) {
		header := strings.SplitN(fixtureCSV, "\n", 2)[0] + "\n"
		_, err := NewLoader(nil).Load(strings.NewReader(header))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no usable rows")
	})
}

func TestLoaderLoadFile(t *testing.T) {
	t.Run("reads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fires.csv")
		require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))

		res, err := NewLoader(nil).LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, res.Records, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(nil).LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open dataset")
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2005-08-10", time.Date(2005, 8, 10, 0, 0, 0, 0, time.UTC)},
		{"2005-08-10 00:00:00", time.Date(2005, 8, 10, 0, 0, 0, 0, time.UTC)},
		{"2005/08/10", time.Date(2005, 8, 10, 0, 0, 0, 0, time.UTC)},
		{"8/10/2005", time.Date(2005, 8, 10, 0, 0, 0, 0, time.UTC)},
		{"8/10/2005 0:00", time.Date(2005, 8, 10, 0, 0, 0, 0, time.UTC)},
		{" 2005-08-10 ", time.Date(2005, 8, 10, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not-a-date", time.Time{}},
		{"13/45/2005", time.Time{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDate(tt.in), "input=%q", tt.in)
	}
}
