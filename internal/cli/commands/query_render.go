package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/emberstack/firedash/internal/store"
	"github.com/jedib0t/go-pretty/v6/table"
)

func renderResults(w io.Writer, res store.QueryResult, format string) error {
	switch format {
	case "json":
		return renderJSON(w, res)
	case "csv":
		return renderCSV(w, res)
	case "md", "markdown":
		return renderMarkdown(w, res)
	default:
		return renderTable(w, res)
	}
}

func renderTable(w io.Writer, res store.QueryResult) error {
	if len(res.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	// Header
	headerRow := make(table.Row, len(res.Columns))
	for i, col := range res.Columns {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	// Rows
	for _, row := range res.Rows {
		out := make(table.Row, len(res.Columns))
		for i := range res.Columns {
			out[i] = formatValue(row[i])
		}
		t.AppendRow(out)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(res.Rows))
	return nil
}

func renderJSON(w io.Writer, res store.QueryResult) error {
	// Encode as a list of column-keyed objects
	results := make([]map[string]any, 0, len(res.Rows))
	for _, row := range res.Rows {
		obj := make(map[string]any, len(res.Columns))
		for i, col := range res.Columns {
			obj[col] = row[i]
		}
		results = append(results, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderCSV(w io.Writer, res store.QueryResult) error {
	// Header
	_, _ = fmt.Fprintln(w, strings.Join(res.Columns, ","))

	// Rows
	for _, row := range res.Rows {
		values := make([]string, len(res.Columns))
		for i := range res.Columns {
			values[i] = escapeCSV(formatValue(row[i]))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderMarkdown(w io.Writer, res store.QueryResult) error {
	if len(res.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	// Header
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(res.Columns, " | "))
	// Separator
	seps := make([]string, len(res.Columns))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	// Rows
	for _, row := range res.Rows {
		values := make([]string, len(res.Columns))
		for i := range res.Columns {
			values[i] = formatValue(row[i])
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// Helper functions for subcommands

func listTables(ctx context.Context, w io.Writer, cctx *CommandContext, format string, viewsOnly bool) error {
	var (
		infos []store.TableInfo
		err   error
	)
	if viewsOnly {
		infos, err = cctx.Store.Views(ctx)
	} else {
		infos, err = cctx.Store.Tables(ctx)
	}
	if err != nil {
		return err
	}

	res := store.QueryResult{Columns: []string{"name", "type"}}
	for _, info := range infos {
		res.Rows = append(res.Rows, []any{info.Name, info.Type})
	}
	return renderResults(w, res, format)
}

func showSchema(ctx context.Context, w io.Writer, cctx *CommandContext, tableName, format string) error {
	cols, err := cctx.Store.Columns(ctx, tableName)
	if err != nil {
		return err
	}

	columns := make([]columnInfo, 0, len(cols))
	for _, col := range cols {
		nullable := "YES"
		if !col.Nullable {
			nullable = "NO"
		}
		columns = append(columns, columnInfo{
			Name:     col.Name,
			Type:     col.Type,
			Nullable: nullable,
			Position: col.Position,
		})
	}

	// Determine if it's a table or view
	objType := "table"
	if views, err := cctx.Store.Views(ctx); err == nil {
		for _, v := range views {
			if strings.EqualFold(v.Name, tableName) {
				objType = "view"
				break
			}
		}
	}

	// Render based on format
	if format == "json" {
		return renderSchemaJSON(w, tableName, objType, columns)
	}

	// Default: formatted text output
	title := "Table"
	if objType == "view" {
		title = "View"
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", title, tableName)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 60))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Type", "Nullable"})

	for _, col := range columns {
		t.AppendRow(table.Row{col.Name, col.Type, col.Nullable})
	}
	t.Render()

	return nil
}

// columnInfo represents schema column information.
type columnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable string `json:"nullable"`
	Position int    `json:"position"`
}

type schemaOutput struct {
	Name    string       `json:"name"`
	Type    string       `json:"type"`
	Columns []columnInfo `json:"columns"`
}

func renderSchemaJSON(w io.Writer, tableName, objType string, columns []columnInfo) error {
	schema := schemaOutput{
		Name:    tableName,
		Type:    objType,
		Columns: columns,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}
