package query

import "errors"

// The query engine reports every failure through one of these sentinel
// errors, wrapped with the offending token. Callers distinguish failure
// modes with errors.Is. All errors abort the whole filter call; there is no
// partial filtering.
var (
	// ErrSyntax indicates the query string does not match the grammar:
	// unbalanced parentheses, a malformed comparison, or trailing input.
	ErrSyntax = errors.New("syntax error")

	// ErrUnresolvedLiteral indicates a comparison value that matches none
	// of the typed literal rules.
	ErrUnresolvedLiteral = errors.New("unresolved literal")

	// ErrUnknownColumn indicates a field name not found on the table it
	// was resolved against.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnknownRelation indicates a field qualifier that names no
	// declared relation of the base table.
	ErrUnknownRelation = errors.New("unknown relation")

	// ErrAmbiguousColumn indicates an unqualified field name found on more
	// than one related table.
	ErrAmbiguousColumn = errors.New("ambiguous column")

	// ErrUnknownOperator indicates a comparison operator outside the
	// supported set. Unreachable through a conforming parser, guarded
	// because the evaluator treats parsed trees as untrusted input.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrUnknownConnective indicates a connective other than & or |.
	// Unreachable through a conforming parser, guarded like
	// ErrUnknownOperator.
	ErrUnknownConnective = errors.New("unknown connective")
)
