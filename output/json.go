package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/relcat-io/relcat/table"
)

// JSONFormatter outputs a table as JSON Lines: one object per row.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row.
func (j *JSONFormatter) Format(t *table.Table) error {
	encoder := json.NewEncoder(j.writer)
	for i, row := range t.Rows() {
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode row %d: %w", i, err)
		}
	}
	return nil
}
