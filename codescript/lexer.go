package codescript

import "unicode/utf8"

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) peekRuneN(n int) rune {
	idx := l.offset
	var r rune
	var w int
	for i := 0; i <= n; i++ {
		if idx >= len(l.input) {
			return 0
		}
		r, w = utf8.DecodeRuneInString(l.input[idx:])
		if i == n {
			return r
		}
		idx += w
	}
	return 0
}

func (l *lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	tok := Token{Pos: Position{Line: l.line, Column: l.column}}

	if l.atEOF() {
		tok.Type = tokenEOF
		return tok
	}

	switch l.ch {
	case '+':
		tok = l.makeToken(tokenPlus, "+")
		l.readRune()
	case '-':
		tok = l.makeToken(tokenMinus, "-")
		l.readRune()
	case '&':
		tok = l.makeToken(tokenAmp, "&")
		l.readRune()
	case '*':
		tok = l.makeToken(tokenAsterisk, "*")
		l.readRune()
	case '/':
		tok = l.makeToken(tokenSlash, "/")
		l.readRune()
	case '%':
		tok = l.makeToken(tokenPercent, "%")
		l.readRune()
	case '(':
		tok = l.makeToken(tokenLParen, "(")
		l.readRune()
	case ')':
		tok = l.makeToken(tokenRParen, ")")
		l.readRune()
	case '{':
		tok = l.makeToken(tokenLBrace, "{")
		l.readRune()
	case '}':
		tok = l.makeToken(tokenRBrace, "}")
		l.readRune()
	case ',':
		tok = l.makeToken(tokenComma, ",")
		l.readRune()
	case ';':
		tok = l.makeToken(tokenSemicolon, ";")
		l.readRune()
	case '!':
		if l.peekRune() == '=' {
			tok = l.makeToken(tokenNotEQ, "!=")
			l.readRune()
			l.readRune()
		} else {
			tok = l.makeToken(tokenBang, "!")
			l.readRune()
		}
	case '=':
		if l.peekRune() == '=' {
			tok = l.makeToken(tokenEQ, "==")
			l.readRune()
			l.readRune()
		} else {
			tok = l.makeToken(tokenAssign, "=")
			l.readRune()
		}
	case '>':
		if l.peekRune() == '=' {
			tok = l.makeToken(tokenGTE, ">=")
			l.readRune()
			l.readRune()
		} else {
			tok = l.makeToken(tokenGT, ">")
			l.readRune()
		}
	case '<':
		if l.peekRune() == '=' {
			tok = l.makeToken(tokenLTE, "<=")
			l.readRune()
			l.readRune()
		} else {
			tok = l.makeToken(tokenLT, "<")
			l.readRune()
		}
	case '"', '\'':
		literal, ok := l.readString()
		if !ok {
			tok.Type = tokenIllegal
			tok.Literal = "unterminated string"
		} else {
			tok.Type = tokenString
			tok.Literal = literal
		}
	default:
		switch {
		case isIdentifierStart(l.ch):
			literal := l.readIdentifier()
			tok.Type = lookupIdent(literal)
			tok.Literal = literal
		case isDigit(l.ch):
			literal, isFloat := l.readNumber()
			tok.Literal = literal
			if isFloat {
				tok.Type = tokenFloat
			} else {
				tok.Type = tokenInt
			}
		default:
			tok = l.makeToken(tokenIllegal, string(l.ch))
			l.readRune()
		}
	}

	return tok
}

// atEOF distinguishes the end of input from a NUL rune in the source.
func (l *lexer) atEOF() bool {
	return l.width == 0
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal, Pos: Position{Line: l.line, Column: l.column}}
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readRune()
			continue
		case '#':
			l.skipComment()
			continue
		default:
			return
		}
	}
}

func (l *lexer) skipComment() {
	for !l.atEOF() && l.ch != '\n' {
		l.readRune()
	}
}

func (l *lexer) readIdentifier() string {
	start := l.currentOffset()
	for isIdentifierRune(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

// readNumber scans INT ([0-9]+) or FLOAT ([0-9]+.[0-9]+). A trailing dot
// without digits is left for the next token.
func (l *lexer) readNumber() (string, bool) {
	start := l.currentOffset()
	hasDot := false
	for {
		r := l.peekRune()
		switch {
		case isDigit(r):
			l.readRune()
		case r == '.' && !hasDot && isDigit(l.peekRuneN(1)):
			hasDot = true
			l.readRune()
		default:
			literal := l.input[start:l.offset]
			l.readRune()
			return literal, hasDot
		}
	}
}

// readString returns the raw literal including both delimiters. There are
// no escape sequences: the string ends at the next matching quote.
func (l *lexer) readString() (string, bool) {
	quote := l.ch
	start := l.currentOffset()
	for {
		l.readRune()
		if l.atEOF() {
			return "", false
		}
		if l.ch == quote {
			literal := l.input[start:l.offset]
			l.readRune()
			return literal, true
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentifierRune(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "while", "until":
		return tokenWhile
	case "if":
		return tokenIf
	case "else":
		return tokenElse
	case "and":
		return tokenAnd
	case "or":
		return tokenOr
	case "xor":
		return tokenXor
	case "true", "false":
		return tokenBool
	case "null":
		return tokenNull
	}
	return tokenIdent
}

// keywords lists the reserved words, used by tooling such as REPL completion.
var keywords = []string{"while", "until", "if", "else", "and", "or", "xor", "true", "false", "null"}

// Keywords returns the reserved words of the language.
func Keywords() []string {
	return append([]string(nil), keywords...)
}

// OpenBraces reports how many '{' in source are still unclosed. Braces inside
// strings and comments do not count.
func OpenBraces(source string) int {
	l := newLexer(source)
	depth := 0
	for tok := l.NextToken(); tok.Type != tokenEOF; tok = l.NextToken() {
		switch tok.Type {
		case tokenLBrace:
			depth++
		case tokenRBrace:
			depth--
		}
	}
	return depth
}
