package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// render writes two-column rows in the configured format. "plain" prints one
// "label: value" line per row.
func render(w io.Writer, format string, rows []table.Row) error {
	if format == "plain" {
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%v: %v\n", row[0], row[1]); err != nil {
				return err
			}
		}
		return nil
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"field", "value"})
	tw.AppendRows(rows)

	var out string
	switch format {
	case "markdown":
		out = tw.RenderMarkdown()
	case "csv":
		out = tw.RenderCSV()
	default:
		out = tw.Render()
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
