package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emberstack/firedash/internal/store"
	"github.com/spf13/cobra"
)

func runQueryREPL(cmd *cobra.Command, opts *QueryOptions) error {
	return withLoadedStore(cmd, func(cctx *CommandContext) error {
		ctx := cmd.Context()
		st := cctx.Store

		// Setup history file (project-local)
		historyDir := cctx.Cfg.ProjectRoot
		if historyDir == "" {
			historyDir = filepath.Dir(cctx.Cfg.Data)
		}
		historyFile := filepath.Join(historyDir, ".firedash_history")

		// Get table names for completion
		completer := newTableCompleter(ctx, st)

		// Configure readline
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "firedash> ",
			HistoryFile:     historyFile,
			AutoComplete:    completer,
			InterruptPrompt: "^C",
			EOFPrompt:       ".quit",
		})
		if err != nil {
			return fmt.Errorf("failed to initialize REPL: %w", err)
		}
		defer func() { _ = rl.Close() }()

		// Print welcome message
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "firedash SQL console (data: %s)\n", cctx.Cfg.Data)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
		_, _ = fmt.Fprintln(cmd.OutOrStdout())

		// REPL loop
		var multiLineBuffer strings.Builder
		for {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				multiLineBuffer.Reset()
				rl.SetPrompt("firedash> ")
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			// Handle dot-commands
			if strings.HasPrefix(line, ".") {
				if handled := handleDotCommand(ctx, cmd, cctx, line, opts.Format); handled {
					if line == ".quit" || line == ".exit" {
						break
					}
					continue
				}
			}

			// Accumulate multi-line SQL until semicolon
			multiLineBuffer.WriteString(line)
			if !strings.HasSuffix(line, ";") {
				multiLineBuffer.WriteString(" ")
				rl.SetPrompt("    ...> ")
				continue
			}
			rl.SetPrompt("firedash> ")

			// Execute query
			query := strings.TrimSuffix(multiLineBuffer.String(), ";")
			multiLineBuffer.Reset()

			if err := executeAndRenderQuery(ctx, cmd, st, query, opts.Format); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
		}

		return nil
	})
}

// executeAndRenderQuery executes a query and renders its collected rows.
func executeAndRenderQuery(ctx context.Context, cmd *cobra.Command, st *store.Store, query, format string) error {
	res, err := st.Query(ctx, query)
	if err != nil {
		return err
	}
	return renderResults(cmd.OutOrStdout(), *res, format)
}

func handleDotCommand(ctx context.Context, cmd *cobra.Command, cctx *CommandContext, line, format string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())
		return true

	case ".tables":
		if err := listTables(ctx, cmd.OutOrStdout(), cctx, format, false); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".views":
		if err := listTables(ctx, cmd.OutOrStdout(), cctx, format, true); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".schema":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .schema <table>")
			return true
		}
		if err := showSchema(ctx, cmd.OutOrStdout(), cctx, parts[1], format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return true

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
		return true
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .tables         List all tables and views
  .views          List views only
  .schema <name>  Show schema for a table or view
  .clear          Clear the screen
  .quit / .exit   Exit the console

Tips:
  - SQL statements must end with a semicolon (;)
  - Use arrow keys to navigate history
  - Tab completion works for table names
`
	_, _ = fmt.Fprintln(w, help)
}

// newTableCompleter creates a readline completer for table names.
func newTableCompleter(ctx context.Context, st *store.Store) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface

	// Get all table and view names
	if infos, err := st.Tables(ctx); err == nil {
		for _, info := range infos {
			items = append(items, readline.PcItem(info.Name))
		}
	}

	// Add dot-commands
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".views"),
		readline.PcItem(".schema"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	return readline.NewPrefixCompleter(items...)
}
