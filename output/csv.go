package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/relcat-io/relcat/table"
)

// CSVFormatter outputs a table as CSV with a header row.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header of column names followed by one record per row,
// in the table's column order.
func (c *CSVFormatter) Format(t *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	cols := t.Columns()
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name()
	}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for row := 0; row < t.NumRows(); row++ {
		record := make([]string, len(cols))
		for i, col := range cols {
			record[i] = formatValue(col.Value(row))
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// formatValue converts a cell value to a string for text output.
func formatValue(v any) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		// Sanitize against CSV injection by prefixing characters that
		// could trigger formula execution in spreadsheet applications.
		if len(val) > 0 {
			first := val[0]
			if first == '=' || first == '+' || first == '-' || first == '@' || first == '\t' || first == '\r' || first == '\n' || first == '|' {
				return "'" + strings.ReplaceAll(val, "'", "''")
			}
		}
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
