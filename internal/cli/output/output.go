// Package output renders command results for terminals, pipes, and
// machine consumers. A single Renderer is threaded through every
// command so mode selection and styling stay consistent: styled text
// on a terminal, clean markdown when piped, JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how command output is rendered.
type OutputMode string

const (
	// ModeAuto picks text on a terminal and markdown when piped.
	ModeAuto OutputMode = "auto"
	// ModeText renders styled terminal text.
	ModeText OutputMode = "text"
	// ModeMarkdown renders plain markdown without ANSI codes.
	ModeMarkdown OutputMode = "markdown"
	// ModeJSON renders machine-readable JSON.
	ModeJSON OutputMode = "json"
)

// Mode parses a mode string, defaulting unknown values to ModeAuto.
func Mode(s string) OutputMode {
	switch OutputMode(s) {
	case ModeText, ModeMarkdown, ModeJSON:
		return OutputMode(s)
	default:
		return ModeAuto
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles Styles
}

// NewRenderer creates a Renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a Renderer with an explicit TTY flag.
// Tests use it to pin mode selection regardless of the environment.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
	}
	r.styles = newStyles(r.useColor())
	return r
}

// useColor restricts styling to text mode on a terminal, honoring
// NO_COLOR. Markdown and JSON output must stay free of ANSI codes.
func (r *Renderer) useColor() bool {
	if r.EffectiveMode() != ModeText || !r.isTTY {
		return false
	}
	return !termenv.EnvNoColor()
}

// EffectiveMode resolves ModeAuto into the concrete mode: text on a
// terminal, markdown when piped.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode == ModeAuto {
		if r.isTTY {
			return ModeText
		}
		return ModeMarkdown
	}
	return r.mode
}

// IsTTY reports whether the output writer is a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Writer returns the underlying output writer, for table renderers
// and other components that write directly.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error output writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Styles returns the active style set.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Println writes a line to the output writer.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Header writes a section heading: styled text on a terminal, markdown
// hashes otherwise.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeText {
		if level <= 1 {
			r.Println(r.styles.Header1.Render(text))
		} else {
			r.Println(r.styles.Header2.Render(text))
		}
		return
	}
	r.Println(FormatHeader(level, text))
}

// Success writes a line with a success marker.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.StatusSuccess.String() + " " + msg)
}

// Warning writes a warning line.
func (r *Renderer) Warning(msg string) {
	r.Println(r.styles.Warning.Render("!") + " " + msg)
}

// Error writes a failure line to the error writer.
func (r *Renderer) Error(msg string) {
	fmt.Fprintln(r.errOut, r.styles.StatusFailed.String()+" "+msg)
}

// Muted writes a de-emphasized line.
func (r *Renderer) Muted(msg string) {
	r.Println(r.styles.Muted.Render(msg))
}

// StatusLine writes an "icon name (detail)" row, used for
// step-by-step results. Status is one of success, failed, or skipped.
func (r *Renderer) StatusLine(name, status, detail string) {
	var icon string
	switch status {
	case "failed", "error":
		icon = r.styles.StatusFailed.String()
	case "skipped":
		icon = r.styles.Muted.Render("-")
	default:
		icon = r.styles.StatusSuccess.String()
	}

	line := icon + " " + name
	if detail != "" {
		line += " " + r.styles.Muted.Render("("+detail+")")
	}
	r.Println(line)
}

// FormatHeader renders a markdown heading of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue renders a markdown "**Key:** value" line.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("**%s:** %s", key, value)
}
