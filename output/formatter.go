// Package output provides formatters for rendering tables.
//
// Currently supported formats:
//   - JSON Lines: one JSON object per row
//   - CSV: comma-separated values with header row
//   - Table: aligned terminal table
//
// Example usage:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(filtered); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/relcat-io/relcat/table"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes the table in the formatter's specific format.
	Format(t *table.Table) error

	// SetOutput changes the output writer.
	SetOutput(w io.Writer)
}

// New returns the formatter for a format name: "jsonl", "csv", or "table".
func New(format string, w io.Writer) (Formatter, bool) {
	switch format {
	case "jsonl":
		return NewJSONFormatter(w), true
	case "csv":
		return NewCSVFormatter(w), true
	case "table":
		return NewTableFormatter(w), true
	default:
		return nil, false
	}
}
