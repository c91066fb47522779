package codescript

import (
	"fmt"
	"strings"
)

type parseError struct {
	pos    Position
	msg    string
	source string
}

func (e *parseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at %d:%d: %s", e.pos.Line, e.pos.Column, e.msg)
	if frame := formatCodeFrame(e.source, e.pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

func (p *parser) errorExpected(tok Token, expected string) {
	p.addParseError(tok.Pos, fmt.Sprintf("expected %s, got %s", expected, tokenDescription(tok)))
}

func (p *parser) errorUnexpected(tok Token) {
	p.addParseError(tok.Pos, fmt.Sprintf("unexpected token %s", tokenDescription(tok)))
}

func (p *parser) addParseError(pos Position, msg string) {
	p.errors = append(p.errors, &parseError{pos: pos, msg: msg, source: p.l.input})
}

func tokenDescription(tok Token) string {
	if tok.Type == tokenIllegal {
		if tok.Literal == "unterminated string" {
			return tok.Literal
		}
		return fmt.Sprintf("invalid token %q", tok.Literal)
	}
	return tokenLabel(tok.Type)
}

func tokenLabel(tt TokenType) string {
	switch tt {
	case tokenIllegal:
		return "invalid token"
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "identifier"
	case tokenInt:
		return "integer"
	case tokenFloat:
		return "float"
	case tokenString:
		return "string"
	case tokenBool:
		return "boolean"
	case tokenNull:
		return "'null'"
	case tokenWhile:
		return "'while'"
	case tokenIf:
		return "'if'"
	case tokenElse:
		return "'else'"
	case tokenAnd:
		return "'and'"
	case tokenOr:
		return "'or'"
	case tokenXor:
		return "'xor'"
	default:
		return "'" + string(tt) + "'"
	}
}
