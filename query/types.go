// Package query implements the relational filter language over linked
// tables.
//
// A query is a boolean expression over comparisons. Each comparison names a
// field (optionally qualified with "self." or a relation name), one of the
// operators < <= == != >= >, and a literal value. Comparisons combine with
// the connectives & and |, which have equal binding power and evaluate
// left-to-right; parentheses are the only precedence mechanism. The package
// includes a lexer for tokenization, a parser producing an expression tree,
// and an evaluator that reduces the tree to a boolean mask over the base
// table's rows.
//
// Example usage:
//
//	filtered, err := query.Filter(customers, "(age > 30 | age < 20) & orders.amount > 1000")
//	if err != nil {
//	    log.Fatal(err)
//	}
package query

// TokenType represents the type of a token.
type TokenType int

const (
	TokenIdent TokenType = iota
	TokenOperator
	TokenValue
	TokenAnd        // &
	TokenOr         // |
	TokenLeftParen  // (
	TokenRightParen // )
	TokenEOF
	TokenError
)

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Connective joins two sibling terms inside a group.
type Connective string

const (
	And Connective = "&"
	Or  Connective = "|"
)

// Node is a node of the parsed expression tree: either a Comparison leaf or
// a nested Group. The unexported marker method keeps the set of node kinds
// closed.
type Node interface {
	node()
}

// Comparison is a single field-operator-value condition. All three parts
// are kept as raw strings; resolution against a concrete table happens at
// evaluation time.
type Comparison struct {
	Field    string
	Operator string
	Value    string
}

func (*Comparison) node() {}

// Group is an ordered sequence of terms joined by connectives. There is
// always one more term than connectives; Ops[i] joins Terms[i] and
// Terms[i+1]. A group holding a single comparison and no connectives is the
// smallest valid form.
type Group struct {
	Terms []Node
	Ops   []Connective
}

func (*Group) node() {}
