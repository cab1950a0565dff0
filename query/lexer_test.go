package query

import "testing"

func TestLexer_StructuralTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			"simple comparison start",
			"age > ",
			[]Token{
				{Type: TokenIdent, Value: "age", Pos: 0},
				{Type: TokenOperator, Value: ">", Pos: 4},
			},
		},
		{
			"all operators",
			"< <= == != >= >",
			[]Token{
				{Type: TokenOperator, Value: "<", Pos: 0},
				{Type: TokenOperator, Value: "<=", Pos: 2},
				{Type: TokenOperator, Value: "==", Pos: 5},
				{Type: TokenOperator, Value: "!=", Pos: 8},
				{Type: TokenOperator, Value: ">=", Pos: 11},
				{Type: TokenOperator, Value: ">", Pos: 14},
			},
		},
		{
			"connectives and parens",
			"( ) & |",
			[]Token{
				{Type: TokenLeftParen, Value: "(", Pos: 0},
				{Type: TokenRightParen, Value: ")", Pos: 2},
				{Type: TokenAnd, Value: "&", Pos: 4},
				{Type: TokenOr, Value: "|", Pos: 6},
			},
		},
		{
			"qualified identifier",
			"orders.amount",
			[]Token{
				{Type: TokenIdent, Value: "orders.amount", Pos: 0},
			},
		},
		{
			"identifier with underscore and digits",
			"col_2",
			[]Token{
				{Type: TokenIdent, Value: "col_2", Pos: 0},
			},
		},
		{
			"single equals is an error",
			"=",
			[]Token{
				{Type: TokenError, Value: "=", Pos: 0},
			},
		},
		{
			"bare bang is an error",
			"!",
			[]Token{
				{Type: TokenError, Value: "!", Pos: 0},
			},
		},
		{
			"invalid character",
			"@",
			[]Token{
				{Type: TokenError, Value: "@", Pos: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			for i, want := range tt.want {
				got := lexer.NextToken()
				if got != want {
					t.Errorf("token %d = %+v, want %+v", i, got, want)
				}
			}
			if got := lexer.NextToken(); got.Type != TokenEOF {
				t.Errorf("expected EOF after %d tokens, got %+v", len(tt.want), got)
			}
		})
	}
}

func TestLexer_NextValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", "30", "30"},
		{"leading whitespace dropped", "   30", "30"},
		{"trailing whitespace dropped", "30   ", "30"},
		{"inner spaces preserved", "New York", "New York"},
		{"quoted value", "'New York'", "'New York'"},
		{"double quoted value", "\"hello\"", "\"hello\""},
		{"dots and commas", "1,234.5", "1,234.5"},
		{"minus sign", "-5", "-5"},
		{"stops at connective", "30 & age", "30"},
		{"stops at pipe", "30 | age", "30"},
		{"stops at paren", "30)", "30"},
		{"empty when no value chars", "&", ""},
		{"empty at end of input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			got := lexer.NextValue()
			if got.Type != TokenValue {
				t.Fatalf("NextValue() type = %v, want TokenValue", got.Type)
			}
			if got.Value != tt.want {
				t.Errorf("NextValue() = %q, want %q", got.Value, tt.want)
			}
		})
	}
}

func TestLexer_ValueThenToken(t *testing.T) {
	lexer := NewLexer("age >= 30 & name == bob")

	if tok := lexer.NextToken(); tok.Value != "age" {
		t.Fatalf("expected age, got %+v", tok)
	}
	if tok := lexer.NextToken(); tok.Value != ">=" {
		t.Fatalf("expected >=, got %+v", tok)
	}
	if val := lexer.NextValue(); val.Value != "30" {
		t.Fatalf("expected 30, got %+v", val)
	}
	if tok := lexer.NextToken(); tok.Type != TokenAnd {
		t.Fatalf("expected &, got %+v", tok)
	}
	if tok := lexer.NextToken(); tok.Value != "name" {
		t.Fatalf("expected name, got %+v", tok)
	}
	if tok := lexer.NextToken(); tok.Value != "==" {
		t.Fatalf("expected ==, got %+v", tok)
	}
	if val := lexer.NextValue(); val.Value != "bob" {
		t.Fatalf("expected bob, got %+v", val)
	}
	if tok := lexer.NextToken(); tok.Type != TokenEOF {
		t.Fatalf("expected EOF, got %+v", tok)
	}
}
