package commands

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/emberstack/firedash/internal/cli/output"
	"github.com/emberstack/firedash/internal/dataset"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	// duckdb driver for the sampling pipeline.
	_ "github.com/marcboeker/go-duckdb"
)

// ReduceOptions holds options for the reduce command.
type ReduceOptions struct {
	MinYear  int
	Fraction float64
	Rows     int
	Seed     int
}

// NewReduceCommand creates the reduce command.
func NewReduceCommand() *cobra.Command {
	opts := &ReduceOptions{}

	cmd := &cobra.Command{
		Use:   "reduce <output.csv>",
		Short: "Write a smaller sample of the dataset",
		Long: `Reduce the wildfire CSV to a smaller file suitable for versioning.

The input is read with DuckDB, filtered to fires after --min-year,
trimmed to the canonical column set, and sampled. Sampling is
percentage-based bernoulli by default; pass --rows for a fixed-size
reservoir sample instead. The seed makes runs repeatable.`,
		Example: `  # Keep roughly half the post-1994 fires
  firedash reduce data/fires_light.csv

  # Keep 10% with a fixed seed
  firedash reduce data/fires_light.csv --fraction 0.1 --seed 42

  # Keep exactly 50000 rows
  firedash reduce data/fires_light.csv --rows 50000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.MinYear, "min-year", 1994, "Drop fires discovered in or before this year")
	cmd.Flags().Float64Var(&opts.Fraction, "fraction", 0.5, "Fraction of rows to keep (bernoulli)")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "Keep exactly this many rows (reservoir) instead of a fraction")
	cmd.Flags().IntVar(&opts.Seed, "seed", 1, "Sampling seed for repeatable output")

	return cmd
}

func runReduce(cmd *cobra.Command, outPath string, opts *ReduceOptions) error {
	cctx := NewCommandContextWithoutStore(cmd)
	cfg := cctx.Cfg
	r := cctx.Renderer

	if err := cfg.ValidateDataFile(); err != nil {
		return err
	}
	if opts.Fraction <= 0 || opts.Fraction > 1 {
		return fmt.Errorf("fraction must be in (0, 1], got %g", opts.Fraction)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := cmd.Context()
	inPath := cfg.Data

	var rowsBefore int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM read_csv_auto('%s')", escapeSQLString(inPath))
	if err := db.QueryRowContext(ctx, countQuery).Scan(&rowsBefore); err != nil {
		return fmt.Errorf("count input rows: %w", err)
	}

	method := "bernoulli"
	sample := fmt.Sprintf("USING SAMPLE %g PERCENT (bernoulli, %d)", opts.Fraction*100, opts.Seed)
	if opts.Rows > 0 {
		method = "reservoir"
		sample = fmt.Sprintf("USING SAMPLE reservoir(%d ROWS) REPEATABLE (%d)", opts.Rows, opts.Seed)
	}

	selectStmt := fmt.Sprintf(
		"SELECT %s FROM read_csv_auto('%s') WHERE FIRE_YEAR > %d %s",
		strings.Join(dataset.Columns, ", "),
		escapeSQLString(inPath),
		opts.MinYear,
		sample,
	)
	copyStmt := fmt.Sprintf("COPY (%s) TO '%s' (HEADER, DELIMITER ',')", selectStmt, escapeSQLString(outPath))
	if _, err := db.ExecContext(ctx, copyStmt); err != nil {
		return fmt.Errorf("write reduced dataset: %w", err)
	}

	var rowsAfter int64
	countQuery = fmt.Sprintf("SELECT COUNT(*) FROM read_csv_auto('%s')", escapeSQLString(outPath))
	if err := db.QueryRowContext(ctx, countQuery).Scan(&rowsAfter); err != nil {
		return fmt.Errorf("count output rows: %w", err)
	}

	report := output.ReduceOutput{
		Input:      inPath,
		Output:     outPath,
		Method:     method,
		MinYear:    opts.MinYear,
		RowsBefore: rowsBefore,
		RowsAfter:  rowsAfter,
	}
	if fi, err := os.Stat(inPath); err == nil {
		report.BytesBefore = fi.Size()
	}
	if fi, err := os.Stat(outPath); err == nil {
		report.BytesAfter = fi.Size()
	}

	// Output based on mode
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeMarkdown:
		return reduceMarkdown(r, report)
	default:
		return reduceText(r, report)
	}
}

// escapeSQLString doubles single quotes for safe literal embedding.
func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// reduceText outputs the reduction report in styled text format.
func reduceText(r *output.Renderer, report output.ReduceOutput) error {
	p := message.NewPrinter(language.English)

	r.Println("")
	r.Header(1, "Dataset Reduced")
	r.Println("")
	r.StatusLine(report.Output, "success", report.Method)
	r.Println("")
	r.Printf("Rows:  %s -> %s\n", p.Sprintf("%d", report.RowsBefore), p.Sprintf("%d", report.RowsAfter))
	r.Printf("Bytes: %s -> %s\n", humanize.Bytes(uint64(report.BytesBefore)), humanize.Bytes(uint64(report.BytesAfter)))
	r.Println("")
	r.Muted("Source: " + report.Input)
	return nil
}

// reduceMarkdown outputs the reduction report in markdown format.
func reduceMarkdown(r *output.Renderer, report output.ReduceOutput) error {
	p := message.NewPrinter(language.English)

	r.Println(output.FormatHeader(1, "Dataset Reduced"))
	r.Println("")
	r.Println(output.FormatKeyValue("Input", report.Input))
	r.Println(output.FormatKeyValue("Output", report.Output))
	r.Println(output.FormatKeyValue("Method", report.Method))
	r.Println(output.FormatKeyValue("Rows", p.Sprintf("%d -> %d", report.RowsBefore, report.RowsAfter)))
	r.Println(output.FormatKeyValue("Bytes", fmt.Sprintf("%s -> %s",
		humanize.Bytes(uint64(report.BytesBefore)), humanize.Bytes(uint64(report.BytesAfter)))))
	return nil
}
