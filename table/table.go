// Package table provides the columnar table model that the query engine
// filters.
//
// A Table is a named collection of equally sized columns with an implicit
// row index. Tables can be linked to other tables through named relations
// (foreign-key style, one hop), which the query engine traverses when a
// filter condition references a related table's column.
//
// Example usage:
//
//	customers, err := table.New("customers",
//	    table.NewColumn("id", []any{int64(1), int64(2)}),
//	    table.NewColumn("age", []any{int64(25), int64(35)}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = customers.Relate("orders", orders, "id", "customer_id")
package table

import (
	"fmt"
	"sort"
)

// Table is a named set of columns sharing one row index.
//
// Tables are not safe for concurrent mutation. Concurrent reads, including
// concurrent filter evaluations, are safe as long as no goroutine calls
// Relate or otherwise mutates the table at the same time.
type Table struct {
	name      string
	columns   []*Column
	byName    map[string]*Column
	relations map[string]Relation
}

// Relation is a named, directed link from one table to another.
//
// OwnColumn is the key column on the source table, OtherColumn the key
// column on the target. Relations are single-hop; a relation graph may be
// cyclic without affecting evaluation.
type Relation struct {
	Target      *Table
	OwnColumn   string
	OtherColumn string
}

// New creates a table from the given columns.
//
// All columns must have the same length and unique, non-empty names.
func New(name string, cols ...*Column) (*Table, error) {
	t := &Table{
		name:      name,
		byName:    make(map[string]*Column, len(cols)),
		relations: make(map[string]Relation),
	}

	for _, col := range cols {
		if col.name == "" {
			return nil, fmt.Errorf("table %q: column with empty name", name)
		}
		if _, exists := t.byName[col.name]; exists {
			return nil, fmt.Errorf("table %q: duplicate column %q", name, col.name)
		}
		if len(t.columns) > 0 && col.Len() != t.columns[0].Len() {
			return nil, fmt.Errorf("table %q: column %q has %d rows, expected %d",
				name, col.name, col.Len(), t.columns[0].Len())
		}
		t.columns = append(t.columns, col)
		t.byName[col.name] = col
	}

	return t, nil
}

// FromRows builds a table from rows represented as maps, the shape the
// parquet reader produces. Columns are ordered alphabetically; rows missing
// a key get a nil cell.
func FromRows(name string, rows []map[string]any) *Table {
	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				names = append(names, col)
			}
		}
	}
	sort.Strings(names)

	cols := make([]*Column, 0, len(names))
	for _, colName := range names {
		values := make([]any, len(rows))
		for i, row := range rows {
			values[i] = row[colName]
		}
		cols = append(cols, NewColumn(colName, values))
	}

	// Construction cannot fail: names are unique and lengths are uniform.
	t, _ := New(name, cols...)
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	col, ok := t.byName[name]
	return col, ok
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Relate declares a named relation to a target table.
//
// ownColumn must exist on this table and otherColumn on the target.
// Declaring a relation under an existing name replaces it.
func (t *Table) Relate(name string, target *Table, ownColumn, otherColumn string) error {
	if name == "" {
		return fmt.Errorf("table %q: relation with empty name", t.name)
	}
	if target == nil {
		return fmt.Errorf("table %q: relation %q has no target table", t.name, name)
	}
	if !t.HasColumn(ownColumn) {
		return fmt.Errorf("table %q: relation %q: own column %q not found", t.name, name, ownColumn)
	}
	if !target.HasColumn(otherColumn) {
		return fmt.Errorf("table %q: relation %q: column %q not found on table %q",
			t.name, name, otherColumn, target.name)
	}

	t.relations[name] = Relation{
		Target:      target,
		OwnColumn:   ownColumn,
		OtherColumn: otherColumn,
	}
	return nil
}

// Relations returns a copy of the table's relation declarations.
func (t *Table) Relations() map[string]Relation {
	out := make(map[string]Relation, len(t.relations))
	for name, rel := range t.relations {
		out[name] = rel
	}
	return out
}

// Select returns a new table containing the rows where mask is true.
//
// The mask must align with the table's row index. The result keeps the
// table's name and relation declarations; relation targets are shared by
// reference, not copied.
func (t *Table) Select(mask Mask) (*Table, error) {
	if len(mask) != t.NumRows() {
		return nil, fmt.Errorf("table %q: mask has %d entries, table has %d rows",
			t.name, len(mask), t.NumRows())
	}

	indices := make([]int, 0, mask.Count())
	for i, keep := range mask {
		if keep {
			indices = append(indices, i)
		}
	}

	cols := make([]*Column, len(t.columns))
	for i, col := range t.columns {
		cols[i] = col.take(indices)
	}

	selected, err := New(t.name, cols...)
	if err != nil {
		return nil, err
	}
	for name, rel := range t.relations {
		selected.relations[name] = rel
	}
	return selected, nil
}

// Rows returns the table contents as one map per row, the shape the output
// formatters consume.
func (t *Table) Rows() []map[string]any {
	rows := make([]map[string]any, t.NumRows())
	for i := range rows {
		row := make(map[string]any, len(t.columns))
		for _, col := range t.columns {
			row[col.name] = col.values[i]
		}
		rows[i] = row
	}
	return rows
}
