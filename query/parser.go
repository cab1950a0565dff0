package query

import "fmt"

// Parser parses filter queries into an expression tree.
type Parser struct {
	lex *Lexer
	tok Token
}

// NewParser creates a parser over the given input.
func NewParser(input string) *Parser {
	p := &Parser{lex: NewLexer(input)}
	p.next()
	return p
}

// next advances to the next structural token.
func (p *Parser) next() {
	p.tok = p.lex.NextToken()
}

// Parse parses a query string into a Group. The whole input must match the
// grammar; trailing input, unbalanced parentheses, and malformed
// comparisons fail with ErrSyntax.
func Parse(input string) (*Group, error) {
	p := NewParser(input)

	group, err := p.parseGroup()
	if err != nil {
		return nil, err
	}

	switch p.tok.Type {
	case TokenEOF:
		return group, nil
	case TokenError:
		return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrSyntax, p.tok.Value, p.tok.Pos)
	case TokenRightParen:
		return nil, fmt.Errorf("%w: unbalanced closing parenthesis at position %d", ErrSyntax, p.tok.Pos)
	default:
		return nil, fmt.Errorf("%w: unexpected trailing input %q at position %d", ErrSyntax, p.tok.Value, p.tok.Pos)
	}
}

// parseGroup parses: term (connective term)*
func (p *Parser) parseGroup() (*Group, error) {
	group := &Group{}

	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	group.Terms = append(group.Terms, term)

	for p.tok.Type == TokenAnd || p.tok.Type == TokenOr {
		op := And
		if p.tok.Type == TokenOr {
			op = Or
		}
		p.next()

		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		group.Ops = append(group.Ops, op)
		group.Terms = append(group.Terms, term)
	}

	return group, nil
}

// parseTerm parses a single comparison or a parenthesized group.
func (p *Parser) parseTerm() (Node, error) {
	switch p.tok.Type {
	case TokenLeftParen:
		p.next()
		group, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		if p.tok.Type != TokenRightParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.next()
		return group, nil

	case TokenIdent:
		return p.parseComparison()

	case TokenError:
		return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrSyntax, p.tok.Value, p.tok.Pos)

	case TokenEOF:
		return nil, fmt.Errorf("%w: unexpected end of query", ErrSyntax)

	default:
		return nil, fmt.Errorf("%w: expected field name or opening parenthesis, got %q at position %d",
			ErrSyntax, p.tok.Value, p.tok.Pos)
	}
}

// parseComparison parses: identifier operator value
func (p *Parser) parseComparison() (*Comparison, error) {
	field := p.tok.Value
	p.next()

	if p.tok.Type != TokenOperator {
		return nil, fmt.Errorf("%w: expected comparison operator after field %q, got %q",
			ErrSyntax, field, p.tok.Value)
	}
	operator := p.tok.Value

	// The value token is lexed on demand: unquoted values may contain
	// spaces and quote characters, which NextToken would misread.
	value := p.lex.NextValue()
	if value.Value == "" {
		return nil, fmt.Errorf("%w: expected value after %q %s", ErrSyntax, field, operator)
	}
	p.next()

	return &Comparison{
		Field:    field,
		Operator: operator,
		Value:    value.Value,
	}, nil
}
