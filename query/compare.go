package query

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
)

// operator is a validated comparison operator.
type operator int

const (
	opLess operator = iota
	opLessEqual
	opEqual
	opNotEqual
	opGreaterEqual
	opGreater
)

// resolveOperator maps an operator symbol to its operator. Symbols outside
// the supported set fail with ErrUnknownOperator.
func resolveOperator(symbol string) (operator, error) {
	switch symbol {
	case "<":
		return opLess, nil
	case "<=":
		return opLessEqual, nil
	case "==":
		return opEqual, nil
	case "!=":
		return opNotEqual, nil
	case ">=":
		return opGreaterEqual, nil
	case ">":
		return opGreater, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, symbol)
	}
}

// compare evaluates one cell against a typed literal.
//
// Missing-value markers match their own flavor of missing data: none
// matches nil cells, nan matches floating-point NaN cells, nat matches
// zero time values. A cell whose type cannot meet the literal is unequal
// to it; ordering such a pair is an error because the result would be
// meaningless rather than false.
func compare(cell any, op operator, lit Literal) (bool, error) {
	switch lit.Kind {
	case LiteralNull:
		return compareMarker(cell == nil, op, "none")
	case LiteralNaN:
		return compareMarker(isNaNCell(cell), op, "nan")
	case LiteralNaT:
		return compareMarker(isNaTCell(cell), op, "nat")
	}

	// Missing cells never satisfy a concrete literal.
	if cell == nil {
		return op == opNotEqual, nil
	}

	switch lit.Kind {
	case LiteralBool:
		b, ok := cell.(bool)
		if !ok {
			return typeMismatch(cell, op, lit)
		}
		return compareBools(b, op, lit.Bool), nil

	case LiteralInt:
		f, ok := toFloat(cell)
		if !ok {
			return typeMismatch(cell, op, lit)
		}
		return compareNumbers(f, op, float64(lit.Int)), nil

	case LiteralFloat:
		f, ok := toFloat(cell)
		if !ok {
			return typeMismatch(cell, op, lit)
		}
		return compareNumbers(f, op, lit.Float), nil

	case LiteralString:
		s, ok := cell.(string)
		if !ok {
			return typeMismatch(cell, op, lit)
		}
		return compareStrings(s, op, lit.Str), nil

	default:
		return false, fmt.Errorf("cannot compare against %s literal", lit.Kind)
	}
}

// compareMarker handles comparison against a missing-value marker. Only
// equality and inequality are meaningful; ordering against a marker is an
// error.
func compareMarker(matches bool, op operator, marker string) (bool, error) {
	switch op {
	case opEqual:
		return matches, nil
	case opNotEqual:
		return !matches, nil
	default:
		return false, fmt.Errorf("cannot order against %s", marker)
	}
}

// typeMismatch handles a cell whose type cannot meet the literal: unequal
// for equality operators, an error for ordering operators.
func typeMismatch(cell any, op operator, lit Literal) (bool, error) {
	switch op {
	case opEqual:
		return false, nil
	case opNotEqual:
		return true, nil
	default:
		return false, fmt.Errorf("cannot compare %T with %s literal", cell, lit.Kind)
	}
}

// toFloat converts a numeric cell to float64. Bools, strings, times, and
// nil are excluded up front; cast handles every integer and float width
// parquet readers produce.
func toFloat(cell any) (float64, bool) {
	switch cell.(type) {
	case nil, bool, string, time.Time:
		return 0, false
	}
	f, err := cast.ToFloat64E(cell)
	if err != nil {
		return 0, false
	}
	return f, true
}

// isNaNCell reports whether a cell holds a floating-point NaN.
func isNaNCell(cell any) bool {
	switch v := cell.(type) {
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	default:
		return false
	}
}

// isNaTCell reports whether a cell holds a missing time value.
func isNaTCell(cell any) bool {
	t, ok := cell.(time.Time)
	return ok && t.IsZero()
}

// compareNumbers compares two numbers. Equality uses a relative epsilon so
// values that round-trip through float32 columns still compare equal.
func compareNumbers(left float64, op operator, right float64) bool {
	const epsilon = 1e-9
	switch op {
	case opEqual, opNotEqual:
		diff := math.Abs(left - right)
		threshold := epsilon * math.Max(1.0, math.Max(math.Abs(left), math.Abs(right)))
		if op == opEqual {
			return diff < threshold
		}
		return diff >= threshold
	case opLess:
		return left < right
	case opGreater:
		return left > right
	case opLessEqual:
		return left <= right
	case opGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive, byte order).
func compareStrings(left string, op operator, right string) bool {
	switch op {
	case opEqual:
		return left == right
	case opNotEqual:
		return left != right
	case opLess:
		return left < right
	case opGreater:
		return left > right
	case opLessEqual:
		return left <= right
	case opGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareBools compares two booleans. Only equality is defined.
func compareBools(left bool, op operator, right bool) bool {
	switch op {
	case opEqual:
		return left == right
	case opNotEqual:
		return left != right
	default:
		return false
	}
}
