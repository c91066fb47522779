package codescript

import "testing"

func TestLexerTokens(t *testing.T) {
	input := `total = 1 + 2.5 & 'a' - "b"
# comment line
until total < 10 { DISPLAY(total, null, true); } else { }
x == y != z <= w >= v > u * s / r % q ! and or xor if`

	expected := []struct {
		typ TokenType
		lit string
	}{
		{tokenIdent, "total"},
		{tokenAssign, "="},
		{tokenInt, "1"},
		{tokenPlus, "+"},
		{tokenFloat, "2.5"},
		{tokenAmp, "&"},
		{tokenString, "'a'"},
		{tokenMinus, "-"},
		{tokenString, `"b"`},
		{tokenWhile, "until"},
		{tokenIdent, "total"},
		{tokenLT, "<"},
		{tokenInt, "10"},
		{tokenLBrace, "{"},
		{tokenIdent, "DISPLAY"},
		{tokenLParen, "("},
		{tokenIdent, "total"},
		{tokenComma, ","},
		{tokenNull, "null"},
		{tokenComma, ","},
		{tokenBool, "true"},
		{tokenRParen, ")"},
		{tokenSemicolon, ";"},
		{tokenRBrace, "}"},
		{tokenElse, "else"},
		{tokenLBrace, "{"},
		{tokenRBrace, "}"},
		{tokenIdent, "x"},
		{tokenEQ, "=="},
		{tokenIdent, "y"},
		{tokenNotEQ, "!="},
		{tokenIdent, "z"},
		{tokenLTE, "<="},
		{tokenIdent, "w"},
		{tokenGTE, ">="},
		{tokenIdent, "v"},
		{tokenGT, ">"},
		{tokenIdent, "u"},
		{tokenAsterisk, "*"},
		{tokenIdent, "s"},
		{tokenSlash, "/"},
		{tokenIdent, "r"},
		{tokenPercent, "%"},
		{tokenIdent, "q"},
		{tokenBang, "!"},
		{tokenAnd, "and"},
		{tokenOr, "or"},
		{tokenXor, "xor"},
		{tokenIf, "if"},
		{tokenEOF, ""},
	}

	l := newLexer(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ || tok.Literal != exp.lit {
			t.Fatalf("token %d: expected %s %q, got %s %q", i, exp.typ, exp.lit, tok.Type, tok.Literal)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	l := newLexer("a = 1\n  DISPLAY(a)")

	want := []Position{
		{Line: 1, Column: 1},
		{Line: 1, Column: 3},
		{Line: 1, Column: 5},
		{Line: 2, Column: 3},
	}
	for i, pos := range want {
		tok := l.NextToken()
		if tok.Pos != pos {
			t.Fatalf("token %d (%q): expected %+v, got %+v", i, tok.Literal, pos, tok.Pos)
		}
	}
}

func TestLexerStringsHaveNoEscapes(t *testing.T) {
	l := newLexer(`"it's \n" 'say "hi"'`)

	first := l.NextToken()
	if first.Type != tokenString || first.Literal != `"it's \n"` {
		t.Fatalf("unexpected first string: %s %q", first.Type, first.Literal)
	}
	second := l.NextToken()
	if second.Type != tokenString || second.Literal != `'say "hi"'` {
		t.Fatalf("unexpected second string: %s %q", second.Type, second.Literal)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	tok := newLexer(`"open`).NextToken()
	if tok.Type != tokenIllegal || tok.Literal != "unterminated string" {
		t.Fatalf("expected unterminated string token, got %s %q", tok.Type, tok.Literal)
	}
}

func TestLexerNumberWithoutFraction(t *testing.T) {
	l := newLexer("3.")
	tok := l.NextToken()
	if tok.Type != tokenInt || tok.Literal != "3" {
		t.Fatalf("expected integer 3, got %s %q", tok.Type, tok.Literal)
	}
	if next := l.NextToken(); next.Type != tokenIllegal || next.Literal != "." {
		t.Fatalf("expected illegal '.', got %s %q", next.Type, next.Literal)
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kw := Keywords()
	kw[0] = "mutated"
	if Keywords()[0] != "while" {
		t.Fatalf("Keywords should return a copy")
	}
}

func TestLexerNULInsideString(t *testing.T) {
	l := newLexer("'a\x00b' x")
	tok := l.NextToken()
	if tok.Type != tokenString || tok.Literal != "'a\x00b'" {
		t.Fatalf("expected string with NUL, got %s %q", tok.Type, tok.Literal)
	}
	if next := l.NextToken(); next.Type != tokenIdent || next.Literal != "x" {
		t.Fatalf("expected identifier after string, got %s %q", next.Type, next.Literal)
	}
	if end := l.NextToken(); end.Type != tokenEOF {
		t.Fatalf("expected EOF, got %s %q", end.Type, end.Literal)
	}
}

func TestLexerNULOutsideStringIsIllegal(t *testing.T) {
	l := newLexer("a\x00b")
	l.NextToken()
	tok := l.NextToken()
	if tok.Type != tokenIllegal || tok.Literal != "\x00" {
		t.Fatalf("expected illegal NUL token, got %s %q", tok.Type, tok.Literal)
	}
	if next := l.NextToken(); next.Type != tokenIdent || next.Literal != "b" {
		t.Fatalf("lexing should continue after NUL, got %s %q", next.Type, next.Literal)
	}
}

func TestOpenBraces(t *testing.T) {
	cases := []struct {
		source string
		want   int
	}{
		{"x = 1", 0},
		{"while x < 3 {", 1},
		{"while a {\n  until b {", 2},
		{"while a { DISPLAY('{') }", 0},
		{"while a { # }\n", 1},
		{"}", -1},
	}
	for _, tc := range cases {
		if got := OpenBraces(tc.source); got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.source, tc.want, got)
		}
	}
}
