package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emberstack/firedash/internal/cli/output"
	"github.com/spf13/cobra"
)

// QueryOptions holds options for the query command.
type QueryOptions struct {
	Format string
	Input  string
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query [SQL]",
		Short: "Query the wildfire dataset with SQL",
		Long: `Run SQL directly against the staged wildfire dataset.

The CSV is loaded into an in-memory DuckDB database with the fires table
and the yearly_stats, state_stats, cause_stats, and seasonal_stats views.
Supports multiple output formats for scripting and integration.

When invoked without arguments, enters interactive REPL mode.`,
		Example: `  # Execute SQL directly
  firedash query "SELECT * FROM yearly_stats"

  # List available tables
  firedash query tables

  # Show schema for a table
  firedash query schema fires

  # Case-insensitive search over names, causes, and states
  firedash query search "lightning"

  # Output as JSON
  firedash query "SELECT * FROM state_stats" --format json

  # Interactive mode
  firedash query`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json, csv, md")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")

	// Subcommands
	cmd.AddCommand(newQueryTablesCommand(opts))
	cmd.AddCommand(newQueryViewsCommand(opts))
	cmd.AddCommand(newQuerySchemaCommand(opts))
	cmd.AddCommand(newQuerySearchCommand(opts))

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	// Determine SQL source
	var sqlQuery string

	switch {
	case len(args) > 0:
		sqlQuery = strings.Join(args, " ")
	case opts.Input != "":
		content, err := os.ReadFile(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		sqlQuery = string(content)
	case !isTerminal(os.Stdin):
		// Read from stdin (piped input)
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		sqlQuery = string(content)
	default:
		// No input, TTY detected - enter REPL mode
		return runQueryREPL(cmd, opts)
	}

	return withLoadedStore(cmd, func(cctx *CommandContext) error {
		res, err := cctx.Store.Query(cmd.Context(), sqlQuery)
		if err != nil {
			return err
		}
		return renderResults(cmd.OutOrStdout(), *res, opts.Format)
	})
}

// withLoadedStore builds a CommandContext, stages the dataset, and runs fn.
func withLoadedStore(cmd *cobra.Command, fn func(cctx *CommandContext) error) error {
	cctx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := loadDataset(cmd, cctx); err != nil {
		return err
	}
	return fn(cctx)
}

// loadDataset stages the CSV, showing a spinner on interactive terminals.
func loadDataset(cmd *cobra.Command, cctx *CommandContext) error {
	r := cctx.Renderer

	var spinner *output.Spinner
	if r.IsTTY() {
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
		spinner.Success(fmt.Sprintf("Loaded %d records", cctx.Store.Stats().Rows))
	}
	return nil
}

// newQueryTablesCommand creates the tables subcommand.
func newQueryTablesCommand(opts *QueryOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List all tables and views over the dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLoadedStore(cmd, func(cctx *CommandContext) error {
				return listTables(cmd.Context(), cmd.OutOrStdout(), cctx, opts.Format, false)
			})
		},
	}
}

// newQueryViewsCommand creates the views subcommand.
func newQueryViewsCommand(opts *QueryOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List views only",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLoadedStore(cmd, func(cctx *CommandContext) error {
				return listTables(cmd.Context(), cmd.OutOrStdout(), cctx, opts.Format, true)
			})
		},
	}
}

// newQuerySchemaCommand creates the schema subcommand.
func newQuerySchemaCommand(opts *QueryOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <table>",
		Short: "Show schema for a table or view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedStore(cmd, func(cctx *CommandContext) error {
				return showSchema(cmd.Context(), cmd.OutOrStdout(), cctx, args[0], opts.Format)
			})
		},
	}
}

// newQuerySearchCommand creates the search subcommand.
func newQuerySearchCommand(opts *QueryOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search fires by name, cause, or state",
		Long: `Search the dataset case-insensitively.

The term is matched against fire names, cause descriptions, state codes,
and state names. Results are ordered by fire size.`,
		Example: `  firedash query search "lightning"
  firedash query search "yosemite" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedStore(cmd, func(cctx *CommandContext) error {
				res, err := cctx.Store.Search(cmd.Context(), args[0], 0)
				if err != nil {
					return err
				}
				return renderResults(cmd.OutOrStdout(), *res, opts.Format)
			})
		},
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
