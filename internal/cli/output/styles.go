package output

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles commands render with. With color
// off every style is an identity passthrough, so markdown and piped
// output stay byte-clean.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Status icons; String() renders them.
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

func newStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Header1: plain,
			Header2: plain,
			Header:  plain,
			Bold:    plain,
			Muted:   plain,
			Success: plain,
			Warning: plain,
			Error:   plain,
			Info:    plain,

			StatusSuccess: lipgloss.NewStyle().SetString("✓"),
			StatusFailed:  lipgloss.NewStyle().SetString("✗"),
		}
	}

	return Styles{
		Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓"),
		StatusFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗"),
	}
}
