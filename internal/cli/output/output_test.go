package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func newBufferRenderer(isTTY bool, mode OutputMode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"text", ModeText},
		{"markdown", ModeMarkdown},
		{"json", ModeJSON},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"yaml", ModeAuto},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Mode(tt.in), "input=%q", tt.in)
	}
}

func TestEffectiveMode(t *testing.T) {
	t.Run("auto on terminal is text", func(t *testing.T) {
		r, _, _ := newBufferRenderer(true, ModeAuto)
		assert.Equal(t, ModeText, r.EffectiveMode())
		assert.True(t, r.IsTTY())
	})

	t.Run("auto piped is markdown", func(t *testing.T) {
		r, _, _ := newBufferRenderer(false, ModeAuto)
		assert.Equal(t, ModeMarkdown, r.EffectiveMode())
		assert.False(t, r.IsTTY())
	})

	t.Run("explicit modes stick", func(t *testing.T) {
		r, _, _ := newBufferRenderer(true, ModeJSON)
		assert.Equal(t, ModeJSON, r.EffectiveMode())
	})
}

func TestRendererJSON(t *testing.T) {
	r, out, _ := newBufferRenderer(false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"fires": 42}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 42, decoded["fires"])
	assert.Contains(t, out.String(), "  \"fires\"") // indented
}

func TestRendererHeader(t *testing.T) {
	t.Run("markdown hashes when piped", func(t *testing.T) {
		r, out, _ := newBufferRenderer(false, ModeMarkdown)
		r.Header(1, "Statistics")
		r.Header(2, "States")

		assert.Contains(t, out.String(), "# Statistics")
		assert.Contains(t, out.String(), "## States")
		assert.False(t, ansiPattern.MatchString(out.String()))
	})

	t.Run("text keeps the title", func(t *testing.T) {
		r, out, _ := newBufferRenderer(true, ModeText)
		r.Header(1, "Statistics")
		assert.Contains(t, out.String(), "Statistics")
	})
}

func TestRendererStatusLines(t *testing.T) {
	r, out, errOut := newBufferRenderer(false, ModeText)

	r.Success("loaded")
	r.Warning("rows skipped")
	r.Muted("source: fires.csv")
	r.StatusLine("git lfs install", "success", "")
	r.StatusLine("git commit", "failed", "exit status 1")
	r.StatusLine("git add", "skipped", "dry run")
	r.Error("load failed")

	text := out.String()
	assert.Contains(t, text, "✓ loaded")
	assert.Contains(t, text, "! rows skipped")
	assert.Contains(t, text, "source: fires.csv")
	assert.Contains(t, text, "✓ git lfs install")
	assert.Contains(t, text, "✗ git commit (exit status 1)")
	assert.Contains(t, text, "- git add (dry run)")
	assert.False(t, ansiPattern.MatchString(text))

	assert.Contains(t, errOut.String(), "✗ load failed")
}

func TestRendererPrint(t *testing.T) {
	r, out, _ := newBufferRenderer(false, ModeText)

	r.Println("hello", "world")
	r.Printf("%d fires\n", 7)

	assert.Equal(t, "hello world\n7 fires\n", out.String())
	assert.Same(t, out, r.Writer())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Deep", FormatHeader(3, "Deep"))
	assert.Equal(t, "# Clamped", FormatHeader(0, "Clamped"))
	assert.Equal(t, "###### Max", FormatHeader(9, "Max"))
	assert.Equal(t, "**Rows:** 42", FormatKeyValue("Rows", "42"))
}

func TestSpinnerWithoutTerminal(t *testing.T) {
	r, out, errOut := newBufferRenderer(false, ModeText)

	sp := r.NewSpinner("Loading dataset...")
	sp.Start()
	sp.Success("dataset loaded")

	// No animation frames outside a TTY, just the final status line.
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "✓ dataset loaded")
}

func TestSpinnerFail(t *testing.T) {
	r, out, _ := newBufferRenderer(false, ModeText)

	sp := r.NewSpinner("Loading dataset...")
	sp.Start()
	sp.Fail("load failed")

	assert.Contains(t, out.String(), "✗ load failed")
}
