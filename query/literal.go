package query

import (
	"fmt"
	"strconv"
	"strings"
)

// LiteralKind tags the resolved type of a comparison value.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralBool
	LiteralInt
	LiteralFloat
	// LiteralNull is the generic missing-value marker (token "none").
	LiteralNull
	// LiteralNaN is the numeric missing-value marker (token "nan"),
	// distinct from LiteralNull.
	LiteralNaN
	// LiteralNaT is the temporal missing-value marker (token "nat"),
	// distinct from both LiteralNull and LiteralNaN.
	LiteralNaT
)

// String returns the kind name for error messages.
func (k LiteralKind) String() string {
	switch k {
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float"
	case LiteralNull:
		return "null"
	case LiteralNaN:
		return "nan"
	case LiteralNaT:
		return "nat"
	default:
		return "unknown"
	}
}

// Literal is a typed comparison value. Exactly the field selected by Kind
// carries the payload; marker kinds carry none.
type Literal struct {
	Kind  LiteralKind
	Str   string
	Bool  bool
	Int   int64
	Float float64
}

// ResolveLiteral converts a raw value token into a typed literal using the
// default strict rules. See resolveLiteral for the rule order.
func ResolveLiteral(token string) (Literal, error) {
	return resolveLiteral(token, false)
}

// resolveLiteral applies the typing rules in order, first match wins:
// quoted string, boolean, none, nan, nat, integer, float. A token matching
// none of them fails with ErrUnresolvedLiteral. When signed is set, integer
// and float tokens may carry a leading minus sign; by default they may not.
func resolveLiteral(token string, signed bool) (Literal, error) {
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return Literal{Kind: LiteralString, Str: token[1 : len(token)-1]}, nil
		}
	}

	switch strings.ToLower(token) {
	case "true":
		return Literal{Kind: LiteralBool, Bool: true}, nil
	case "false":
		return Literal{Kind: LiteralBool, Bool: false}, nil
	case "none":
		return Literal{Kind: LiteralNull}, nil
	case "nan":
		return Literal{Kind: LiteralNaN}, nil
	case "nat":
		return Literal{Kind: LiteralNaT}, nil
	}

	digits := token
	if signed {
		digits = strings.TrimPrefix(digits, "-")
	}

	if isDigits(digits) {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Literal{}, fmt.Errorf("%w: integer %q out of range", ErrUnresolvedLiteral, token)
		}
		return Literal{Kind: LiteralInt, Int: n}, nil
	}

	// A float token is digits with exactly one embedded dot; either side
	// of the dot may be empty (".5", "5.").
	if dot := strings.IndexByte(digits, '.'); dot >= 0 {
		rest := digits[:dot] + digits[dot+1:]
		if isDigits(rest) {
			f, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return Literal{}, fmt.Errorf("%w: float %q out of range", ErrUnresolvedLiteral, token)
			}
			return Literal{Kind: LiteralFloat, Float: f}, nil
		}
	}

	return Literal{}, fmt.Errorf("%w: cannot type value %q", ErrUnresolvedLiteral, token)
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
