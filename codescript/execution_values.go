package codescript

import "strconv"

func (exec *Execution) evalConstant(c *Constant) (Value, error) {
	switch c.Kind {
	case LiteralInt:
		i, err := strconv.ParseInt(c.Text, 10, 64)
		if err != nil {
			return NewNull(), exec.errorAt(c.Pos(), runtimeErrorTypeBase, "invalid integer literal %s", c.Text)
		}
		return NewInt(i), nil
	case LiteralFloat:
		f, err := strconv.ParseFloat(c.Text, 64)
		if err != nil {
			return NewNull(), exec.errorAt(c.Pos(), runtimeErrorTypeBase, "invalid float literal %s", c.Text)
		}
		return NewFloat(f), nil
	case LiteralString:
		return NewString(stripDelimiters(c.Text)), nil
	case LiteralBool:
		// Anything other than the exact token "true" is false.
		return NewBool(c.Text == "true"), nil
	case LiteralNull:
		return NewNull(), nil
	default:
		return NewNull(), exec.errorAt(c.Pos(), runtimeErrorTypeUnsupported, "unsupported %s literal", c.Kind)
	}
}

// stripDelimiters drops the first and last rune. The lexer guarantees they
// are the quotes.
func stripDelimiters(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return ""
	}
	return string(runes[1 : len(runes)-1])
}
