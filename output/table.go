package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/relcat-io/relcat/table"
)

// TableFormatter renders a table as an aligned terminal table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new terminal table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the table with a header row, columns in table order.
func (f *TableFormatter) Format(t *table.Table) error {
	cols := t.Columns()
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name()
	}

	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(header)

	for row := 0; row < t.NumRows(); row++ {
		record := make([]string, len(cols))
		for i, col := range cols {
			record[i] = formatValue(col.Value(row))
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}
