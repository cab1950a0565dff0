package query

import (
	"strings"
	"unicode"
)

// Lexer tokenizes filter query strings.
//
// Value tokens are context-dependent: an unquoted value may contain spaces
// and quote characters, so the parser requests them explicitly through
// NextValue after consuming a comparison operator. NextToken handles every
// other token kind.
type Lexer struct {
	input string
	pos   int
	ch    rune
}

// NewLexer creates a new lexer.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character.
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = rune(l.input[l.pos])
	}
	l.pos++
}

// peekChar looks at the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return rune(l.input[l.pos])
}

// skipWhitespace skips whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// isIdentChar reports whether ch can appear in a field reference. The dot
// is part of the identifier charset; qualification splits on it later.
func isIdentChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '.' || ch == '_'
}

// isValueChar reports whether ch can appear in a value token.
func isValueChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) ||
		ch == '-' || ch == '.' || ch == ',' || ch == '\'' || ch == '"' || ch == ' '
}

// readIdentifier reads a field reference.
func (l *Lexer) readIdentifier() string {
	var result strings.Builder
	for isIdentChar(l.ch) {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// NextToken returns the next structural token: an identifier, operator,
// connective, parenthesis, or EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.pos - 1

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Pos: pos}
	case '&':
		l.readChar()
		return Token{Type: TokenAnd, Value: "&", Pos: pos}
	case '|':
		l.readChar()
		return Token{Type: TokenOr, Value: "|", Pos: pos}
	case '(':
		l.readChar()
		return Token{Type: TokenLeftParen, Value: "(", Pos: pos}
	case ')':
		l.readChar()
		return Token{Type: TokenRightParen, Value: ")", Pos: pos}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenOperator, Value: "==", Pos: pos}
		}
		l.readChar()
		return Token{Type: TokenError, Value: "=", Pos: pos}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenOperator, Value: "!=", Pos: pos}
		}
		l.readChar()
		return Token{Type: TokenError, Value: "!", Pos: pos}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenOperator, Value: "<=", Pos: pos}
		}
		l.readChar()
		return Token{Type: TokenOperator, Value: "<", Pos: pos}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenOperator, Value: ">=", Pos: pos}
		}
		l.readChar()
		return Token{Type: TokenOperator, Value: ">", Pos: pos}
	}

	if isIdentChar(l.ch) {
		return Token{Type: TokenIdent, Value: l.readIdentifier(), Pos: pos}
	}

	ch := l.ch
	l.readChar()
	return Token{Type: TokenError, Value: string(ch), Pos: pos}
}

// NextValue returns the next value token: the longest run of value
// characters. Leading and trailing whitespace is between-token whitespace
// and is dropped; whitespace inside the run is literal content, so values
// like New York need no quoting. Returns an empty-valued token when no
// value characters follow.
func (l *Lexer) NextValue() Token {
	l.skipWhitespace()

	pos := l.pos - 1
	var result strings.Builder
	for isValueChar(l.ch) {
		result.WriteRune(l.ch)
		l.readChar()
	}

	return Token{
		Type:  TokenValue,
		Value: strings.TrimRight(result.String(), " "),
		Pos:   pos,
	}
}
