package table

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Column is a named vector of cell values.
type Column struct {
	name   string
	values []any
}

// NewColumn creates a column. The values slice is used directly, not copied.
func NewColumn(name string, values []any) *Column {
	return &Column{name: name, values: values}
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Len returns the number of cells.
func (c *Column) Len() int {
	return len(c.values)
}

// Value returns the cell at row i.
func (c *Column) Value(i int) any {
	return c.values[i]
}

// EachMask applies pred to every cell and returns the resulting boolean
// mask. The first predicate error aborts the scan.
func (c *Column) EachMask(pred func(cell any) (bool, error)) (Mask, error) {
	mask := make(Mask, len(c.values))
	for i, v := range c.values {
		ok, err := pred(v)
		if err != nil {
			return nil, fmt.Errorf("column %q, row %d: %w", c.name, i, err)
		}
		mask[i] = ok
	}
	return mask, nil
}

// DistinctWhere returns the distinct cell values at rows where mask is
// true, in first-seen order.
func (c *Column) DistinctWhere(mask Mask) ([]any, error) {
	if len(mask) != len(c.values) {
		return nil, fmt.Errorf("column %q: mask has %d entries, column has %d rows",
			c.name, len(mask), len(c.values))
	}

	seen := make(map[any]bool)
	var distinct []any
	for i, keep := range mask {
		if !keep {
			continue
		}
		key := scalarKey(c.values[i])
		if !seen[key] {
			seen[key] = true
			distinct = append(distinct, c.values[i])
		}
	}
	return distinct, nil
}

// In returns a mask marking the rows whose cell value is a member of set.
func (c *Column) In(set []any) Mask {
	keys := make(map[any]bool, len(set))
	for _, v := range set {
		keys[scalarKey(v)] = true
	}

	mask := make(Mask, len(c.values))
	for i, v := range c.values {
		mask[i] = keys[scalarKey(v)]
	}
	return mask
}

// take returns a new column containing the cells at the given row indices.
func (c *Column) take(indices []int) *Column {
	values := make([]any, len(indices))
	for i, idx := range indices {
		values[i] = c.values[idx]
	}
	return &Column{name: c.name, values: values}
}

// scalarKey normalizes a cell value into a comparable map key so that
// numerically equal values of different widths match. Parquet round-trips
// can widen an int32 key to int64 or float64 depending on the writer, and
// key membership must not care.
func scalarKey(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case bool:
		return v
	case string:
		return v
	case time.Time:
		return v.UnixNano()
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f
	}
	return fmt.Sprintf("%#v", v)
}
