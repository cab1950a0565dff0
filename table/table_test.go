package table

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tbl, err := New("customers",
		NewColumn("id", []any{int64(1), int64(2)}),
		NewColumn("age", []any{int64(25), int64(35)}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Name() != "customers" {
		t.Errorf("Name() = %q, want %q", tbl.Name(), "customers")
	}
	if tbl.NumRows() != 2 {
		t.Errorf("NumRows() = %d, want 2", tbl.NumRows())
	}
	if !tbl.HasColumn("age") || tbl.HasColumn("missing") {
		t.Error("HasColumn gives wrong answers")
	}
	col, ok := tbl.Column("id")
	if !ok || col.Name() != "id" {
		t.Errorf("Column(id) = %v, %v", col, ok)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		cols []*Column
	}{
		{"empty column name", []*Column{NewColumn("", []any{1})}},
		{"duplicate column", []*Column{
			NewColumn("id", []any{1}),
			NewColumn("id", []any{2}),
		}},
		{"ragged lengths", []*Column{
			NewColumn("a", []any{1, 2}),
			NewColumn("b", []any{1}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("bad", tt.cols...); err == nil {
				t.Fatal("New succeeded, want error")
			}
		})
	}
}

func TestFromRows(t *testing.T) {
	tbl := FromRows("people", []map[string]any{
		{"name": "Alice", "age": int64(40)},
		{"name": "Bob"},
	})

	// Columns come out alphabetical regardless of map order.
	cols := tbl.Columns()
	if len(cols) != 2 || cols[0].Name() != "age" || cols[1].Name() != "name" {
		t.Fatalf("unexpected column order: %v, %v", cols[0].Name(), cols[1].Name())
	}

	// A row missing a key gets a nil cell.
	age, _ := tbl.Column("age")
	if age.Value(1) != nil {
		t.Errorf("missing cell = %v, want nil", age.Value(1))
	}
}

func TestFromRows_Empty(t *testing.T) {
	tbl := FromRows("empty", nil)
	if tbl.NumRows() != 0 {
		t.Errorf("NumRows() = %d, want 0", tbl.NumRows())
	}
}

func TestRelate(t *testing.T) {
	customers, _ := New("customers", NewColumn("id", []any{int64(1)}))
	orders, _ := New("orders", NewColumn("customer_id", []any{int64(1)}))

	if err := customers.Relate("orders", orders, "id", "customer_id"); err != nil {
		t.Fatal(err)
	}
	rel, ok := customers.Relations()["orders"]
	if !ok || rel.Target != orders || rel.OwnColumn != "id" || rel.OtherColumn != "customer_id" {
		t.Fatalf("Relations()[orders] = %+v, %v", rel, ok)
	}
}

func TestRelate_Errors(t *testing.T) {
	customers, _ := New("customers", NewColumn("id", []any{int64(1)}))
	orders, _ := New("orders", NewColumn("customer_id", []any{int64(1)}))

	tests := []struct {
		name        string
		relName     string
		target      *Table
		own, other  string
		wantMessage string
	}{
		{"empty name", "", orders, "id", "customer_id", "empty name"},
		{"nil target", "orders", nil, "id", "customer_id", "no target"},
		{"missing own column", "orders", orders, "missing", "customer_id", "own column"},
		{"missing other column", "orders", orders, "id", "missing", "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := customers.Relate(tt.relName, tt.target, tt.own, tt.other)
			if err == nil {
				t.Fatal("Relate succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("error %q does not mention %q", err, tt.wantMessage)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	customers, _ := New("customers",
		NewColumn("id", []any{int64(1), int64(2), int64(3)}),
		NewColumn("name", []any{"Alice", "Bob", "Carol"}),
	)
	orders, _ := New("orders", NewColumn("customer_id", []any{int64(1)}))
	if err := customers.Relate("orders", orders, "id", "customer_id"); err != nil {
		t.Fatal(err)
	}

	got, err := customers.Select(Mask{true, false, true})
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", got.NumRows())
	}
	name, _ := got.Column("name")
	if name.Value(0) != "Alice" || name.Value(1) != "Carol" {
		t.Errorf("selected names = %v, %v", name.Value(0), name.Value(1))
	}
	if got.Name() != "customers" {
		t.Errorf("Name() = %q, want %q", got.Name(), "customers")
	}
	if _, ok := got.Relations()["orders"]; !ok {
		t.Error("selection dropped the relation declarations")
	}

	// Source table untouched.
	if customers.NumRows() != 3 {
		t.Errorf("source NumRows() = %d, want 3", customers.NumRows())
	}
}

func TestSelect_MaskMismatch(t *testing.T) {
	tbl, _ := New("t", NewColumn("a", []any{1, 2}))
	if _, err := tbl.Select(Mask{true}); err == nil {
		t.Fatal("Select with short mask succeeded, want error")
	}
}

func TestRows(t *testing.T) {
	tbl, _ := New("t",
		NewColumn("id", []any{int64(1), int64(2)}),
		NewColumn("name", []any{"Alice", "Bob"}),
	)
	rows := tbl.Rows()
	if len(rows) != 2 {
		t.Fatalf("len(Rows()) = %d, want 2", len(rows))
	}
	if rows[1]["id"] != int64(2) || rows[1]["name"] != "Bob" {
		t.Errorf("Rows()[1] = %v", rows[1])
	}
}

func TestMask_AndOr(t *testing.T) {
	a := Mask{true, true, false}
	b := Mask{true, false, false}

	and, err := a.And(b)
	if err != nil {
		t.Fatal(err)
	}
	if and[0] != true || and[1] != false || and[2] != false {
		t.Errorf("And = %v", and)
	}

	or, err := a.Or(b)
	if err != nil {
		t.Fatal(err)
	}
	if or[0] != true || or[1] != true || or[2] != false {
		t.Errorf("Or = %v", or)
	}

	if or.Count() != 2 {
		t.Errorf("Count() = %d, want 2", or.Count())
	}

	if _, err := a.And(Mask{true}); err == nil {
		t.Error("And with mismatched lengths succeeded, want error")
	}
	if _, err := a.Or(Mask{true}); err == nil {
		t.Error("Or with mismatched lengths succeeded, want error")
	}
}

func TestColumn_EachMask(t *testing.T) {
	col := NewColumn("age", []any{int64(40), int64(25), int64(15)})

	mask, err := col.EachMask(func(cell any) (bool, error) {
		return cell.(int64) > 20, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if mask[0] != true || mask[1] != true || mask[2] != false {
		t.Errorf("EachMask = %v", mask)
	}
}

func TestColumn_EachMask_Error(t *testing.T) {
	col := NewColumn("age", []any{int64(40)})
	_, err := col.EachMask(func(any) (bool, error) {
		return false, errEach
	})
	if err == nil {
		t.Fatal("EachMask with failing predicate succeeded, want error")
	}
	if !strings.Contains(err.Error(), `column "age", row 0`) {
		t.Errorf("error %q does not locate the failing cell", err)
	}
}

var errEach = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }

func TestColumn_DistinctWhere(t *testing.T) {
	col := NewColumn("customer_id", []any{int64(1), int64(1), int64(3), int64(2)})

	got, err := col.DistinctWhere(Mask{true, true, true, false})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != int64(1) || got[1] != int64(3) {
		t.Errorf("DistinctWhere = %v, want [1 3]", got)
	}

	if _, err := col.DistinctWhere(Mask{true}); err == nil {
		t.Error("DistinctWhere with short mask succeeded, want error")
	}
}

func TestColumn_In(t *testing.T) {
	col := NewColumn("id", []any{int64(1), int64(2), int64(3)})

	mask := col.In([]any{int64(1), int64(3)})
	if mask[0] != true || mask[1] != false || mask[2] != true {
		t.Errorf("In = %v", mask)
	}
}

func TestColumn_In_MixedWidths(t *testing.T) {
	// Keys that round-tripped through different parquet physical types
	// must still match.
	col := NewColumn("id", []any{int32(1), int64(2), float64(3)})

	mask := col.In([]any{int64(1), int32(2), int64(3)})
	for i, ok := range mask {
		if !ok {
			t.Errorf("row %d with widened key did not match", i)
		}
	}
}
