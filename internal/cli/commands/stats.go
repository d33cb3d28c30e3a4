package commands

import (
	"strings"

	"github.com/emberstack/firedash/internal/cli/output"
	"github.com/emberstack/firedash/internal/dataset"
	"github.com/emberstack/firedash/internal/store"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StatsOptions holds options for the stats command.
type StatsOptions struct {
	Top    int
	From   int
	To     int
	States []string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show wildfire statistics in the terminal",
		Long: `Show headline figures, top states, and top causes for the dataset.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Full-dataset statistics
  firedash stats

  # Statistics for California fires since 2005
  firedash stats --state CA --from 2005

  # Top 5 states and causes as JSON
  firedash stats --top 5 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Top, "top", 10, "Number of states and causes to list")
	cmd.Flags().IntVar(&opts.From, "from", 0, "Only include fires from this year on")
	cmd.Flags().IntVar(&opts.To, "to", 0, "Only include fires up to this year")
	cmd.Flags().StringSliceVar(&opts.States, "state", nil, "Filter by state code (repeatable)")

	return cmd
}

func runStats(cmd *cobra.Command, opts *StatsOptions) error {
	cctx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r := cctx.Renderer
	effectiveMode := r.EffectiveMode()

	// Show spinner for TTY mode
	var spinner *output.Spinner
	if effectiveMode == output.ModeText {
		spinner = r.NewSpinner("Loading dataset...")
		spinner.Start()
	}

	if err := cctx.Store.LoadFile(cmd.Context()); err != nil {
		if spinner != nil {
			spinner.Fail("Failed to load dataset")
		}
		return err
	}

	if spinner != nil {
		spinner.Success("Dataset loaded")
	}

	f := store.Filter{
		YearFrom: opts.From,
		YearTo:   opts.To,
		States:   normalizeStateCodes(opts.States),
	}

	ctx := cmd.Context()
	summary, err := cctx.Store.Summary(ctx, f)
	if err != nil {
		return err
	}
	states, err := cctx.Store.StateStats(ctx, f, store.ByFires, opts.Top)
	if err != nil {
		return err
	}
	causes, err := cctx.Store.CauseStats(ctx, f, opts.Top)
	if err != nil {
		return err
	}

	// Output based on mode
	switch effectiveMode {
	case output.ModeJSON:
		return statsJSON(r, summary, states, causes)
	case output.ModeMarkdown:
		return statsMarkdown(r, summary, states, causes)
	default:
		return statsText(r, summary, states, causes)
	}
}

// normalizeStateCodes uppercases and trims state filter values.
func normalizeStateCodes(states []string) []string {
	var out []string
	for _, s := range states {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// statsText outputs statistics in styled text format.
func statsText(r *output.Renderer, summary store.Summary, states []store.StateStat, causes []store.CauseStat) error {
	styles := r.Styles()
	p := message.NewPrinter(language.English)

	r.Println("")
	r.Header(1, "Wildfire Statistics")
	r.Println("")
	r.Printf("%s %s\n", styles.Bold.Render("Fires:"), p.Sprintf("%d", summary.Fires))
	r.Printf("%s %.1f days\n", styles.Bold.Render("Avg duration:"), summary.AvgDurationDays)
	r.Printf("%s %s\n", styles.Bold.Render("Total burned:"), dataset.FormatAreaKM2(summary.TotalSizeKM2))
	r.Printf("%s %s\n", styles.Bold.Render("Avg fire size:"), dataset.FormatAreaKM2(summary.AvgSizeKM2))

	if len(states) > 0 {
		r.Println("")
		r.Header(2, "Top States")
		renderStateStats(r, states, false)
	}

	if len(causes) > 0 {
		r.Println("")
		r.Header(2, "Top Causes")
		renderCauseStats(r, causes, false)
	}

	return nil
}

// statsMarkdown outputs statistics in markdown format.
func statsMarkdown(r *output.Renderer, summary store.Summary, states []store.StateStat, causes []store.CauseStat) error {
	p := message.NewPrinter(language.English)

	r.Println(output.FormatHeader(1, "Wildfire Statistics"))
	r.Println("")
	r.Println(output.FormatKeyValue("Fires", p.Sprintf("%d", summary.Fires)))
	r.Println(output.FormatKeyValue("Avg Duration", p.Sprintf("%.1f days", summary.AvgDurationDays)))
	r.Println(output.FormatKeyValue("Total Burned", dataset.FormatAreaKM2(summary.TotalSizeKM2)))
	r.Println(output.FormatKeyValue("Avg Fire Size", dataset.FormatAreaKM2(summary.AvgSizeKM2)))

	if len(states) > 0 {
		r.Println("")
		r.Println(output.FormatHeader(2, "Top States"))
		renderStateStats(r, states, true)
	}

	if len(causes) > 0 {
		r.Println("")
		r.Println(output.FormatHeader(2, "Top Causes"))
		renderCauseStats(r, causes, true)
	}

	return nil
}

// statsJSON outputs statistics in JSON format.
func statsJSON(r *output.Renderer, summary store.Summary, states []store.StateStat, causes []store.CauseStat) error {
	out := output.StatsOutput{
		Summary: output.SummaryInfo{
			Fires:           summary.Fires,
			AvgDurationDays: summary.AvgDurationDays,
			TotalAreaKM2:    summary.TotalSizeKM2,
			AvgAreaKM2:      summary.AvgSizeKM2,
		},
		States: make([]output.StateInfo, 0, len(states)),
		Causes: make([]output.CauseInfo, 0, len(causes)),
	}

	for _, s := range states {
		out.States = append(out.States, output.StateInfo{
			Code:         s.State,
			Name:         s.StateName,
			Fires:        s.Fires,
			TotalAreaKM2: s.TotalSizeKM2,
			AvgAreaKM2:   s.AvgSizeKM2,
		})
	}
	for _, c := range causes {
		out.Causes = append(out.Causes, output.CauseInfo{
			Cause:        c.Cause,
			Fires:        c.Fires,
			TotalAreaKM2: c.TotalSizeKM2,
		})
	}

	return r.JSON(out)
}

// renderStateStats renders the ranked state table.
func renderStateStats(r *output.Renderer, states []store.StateStat, markdown bool) {
	p := message.NewPrinter(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"State", "Fires", "Total Burned", "Avg Size"})

	for _, s := range states {
		name := s.StateName
		if name == "" {
			name = s.State
		}
		t.AppendRow(table.Row{
			name,
			p.Sprintf("%d", s.Fires),
			dataset.FormatAreaKM2(s.TotalSizeKM2),
			dataset.FormatAreaKM2(s.AvgSizeKM2),
		})
	}

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// renderCauseStats renders the ranked cause table.
func renderCauseStats(r *output.Renderer, causes []store.CauseStat, markdown bool) {
	p := message.NewPrinter(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Cause", "Fires", "Total Burned"})

	for _, c := range causes {
		t.AppendRow(table.Row{
			c.Cause,
			p.Sprintf("%d", c.Fires),
			dataset.FormatAreaKM2(c.TotalSizeKM2),
		})
	}

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
