package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberstack/firedash/internal/cli/output"
	"github.com/emberstack/firedash/internal/store"
)

func TestNormalizeStateCodes(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil passes through", nil, nil},
		{"uppercases", []string{"ca", "or"}, []string{"CA", "OR"}},
		{"trims whitespace", []string{" ca ", "GA"}, []string{"CA", "GA"}},
		{"drops empties", []string{"", "  ", "TX"}, []string{"TX"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeStateCodes(tt.input))
		})
	}
}

func statsFixture() (store.Summary, []store.StateStat, []store.CauseStat) {
	summary := store.Summary{
		Fires:           12345,
		AvgDurationDays: 4.2,
		TotalSizeKM2:    1234.5,
		AvgSizeKM2:      0.1,
	}
	states := []store.StateStat{
		{State: "CA", StateName: "California", Fires: 1892, TotalSizeKM2: 456.7, AvgSizeKM2: 0.24},
	}
	causes := []store.CauseStat{
		{Cause: "Lightning", Fires: 4021, TotalSizeKM2: 890.1},
	}
	return summary, states, causes
}

func TestStatsMarkdown(t *testing.T) {
	summary, states, causes := statsFixture()

	buf := new(bytes.Buffer)
	r := output.NewRendererWithTTY(buf, buf, false, output.ModeMarkdown)
	require.NoError(t, statsMarkdown(r, summary, states, causes))

	out := buf.String()
	assert.Contains(t, out, "# Wildfire Statistics")
	assert.Contains(t, out, "**Fires:** 12,345")
	assert.Contains(t, out, "## Top States")
	assert.Contains(t, out, "California")
	assert.Contains(t, out, "## Top Causes")
	assert.Contains(t, out, "Lightning")
}

func TestStatsText(t *testing.T) {
	summary, states, causes := statsFixture()

	buf := new(bytes.Buffer)
	r := output.NewRendererWithTTY(buf, buf, true, output.ModeText)
	require.NoError(t, statsText(r, summary, states, causes))

	out := buf.String()
	assert.Contains(t, out, "Wildfire Statistics")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "4.2 days")
	assert.Contains(t, out, "California")
	assert.Contains(t, out, "Lightning")
}

func TestStatsJSON(t *testing.T) {
	summary, states, causes := statsFixture()

	buf := new(bytes.Buffer)
	r := output.NewRendererWithTTY(buf, buf, false, output.ModeJSON)
	require.NoError(t, statsJSON(r, summary, states, causes))

	var got output.StatsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 12345, got.Summary.Fires)
	require.Len(t, got.States, 1)
	assert.Equal(t, "CA", got.States[0].Code)
	assert.Equal(t, "California", got.States[0].Name)
	require.Len(t, got.Causes, 1)
	assert.Equal(t, "Lightning", got.Causes[0].Cause)
}

func TestStatsMarkdown_OmitsEmptySections(t *testing.T) {
	summary, _, _ := statsFixture()

	buf := new(bytes.Buffer)
	r := output.NewRendererWithTTY(buf, buf, false, output.ModeMarkdown)
	require.NoError(t, statsMarkdown(r, summary, nil, nil))

	out := buf.String()
	assert.NotContains(t, out, "Top States")
	assert.NotContains(t, out, "Top Causes")
}
