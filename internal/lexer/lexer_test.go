package lexer

import "testing"

func TestNextTokenLambdaApplication(t *testing.T) {
	input := "((lambda (x) x) 42) ; apply identity\n(+ a b)"

	tests := []struct {
		typ    TokenType
		lexeme string
	}{
		{LPAREN, "("},
		{LPAREN, "("},
		{LAMBDA, "lambda"},
		{LPAREN, "("},
		{SYMBOL, "x"},
		{RPAREN, ")"},
		{SYMBOL, "x"},
		{RPAREN, ")"},
		{INT, "42"},
		{RPAREN, ")"},
		{LPAREN, "("},
		{SYMBOL, "+"},
		{SYMBOL, "a"},
		{SYMBOL, "b"},
		{RPAREN, ")"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range tests {
		got := l.NextToken()
		if got.Type != want.typ || got.Lexeme != want.lexeme {
			t.Fatalf("token %d: got %s, want %s(%q)", i, got, want.typ, want.lexeme)
		}
	}
}

func TestNextTokenNegativeInteger(t *testing.T) {
	l := New("-5")
	tok := l.NextToken()
	if tok.Type != INT || tok.Lexeme != "-5" {
		t.Fatalf("got %s, want INT(-5)", tok)
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok)
	}
}

func TestNextTokenCommentSkipped(t *testing.T) {
	l := New("; a whole comment line\nx")
	tok := l.NextToken()
	if tok.Type != SYMBOL || tok.Lexeme != "x" {
		t.Fatalf("got %s, want SYMBOL(x)", tok)
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	l := New("(x\n y)")
	_ = l.NextToken() // (
	x := l.NextToken()
	if x.Line != 1 {
		t.Errorf("x.Line = %d, want 1", x.Line)
	}
	y := l.NextToken()
	if y.Line != 2 {
		t.Errorf("y.Line = %d, want 2", y.Line)
	}
}
