package table

import "fmt"

// Mask is a boolean vector aligned with a table's row index.
type Mask []bool

// And returns the elementwise conjunction of m and other.
func (m Mask) And(other Mask) (Mask, error) {
	if len(m) != len(other) {
		return nil, fmt.Errorf("mask length mismatch: %d vs %d", len(m), len(other))
	}
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] && other[i]
	}
	return out, nil
}

// Or returns the elementwise disjunction of m and other.
func (m Mask) Or(other Mask) (Mask, error) {
	if len(m) != len(other) {
		return nil, fmt.Errorf("mask length mismatch: %d vs %d", len(m), len(other))
	}
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] || other[i]
	}
	return out, nil
}

// Count returns the number of true entries.
func (m Mask) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}
