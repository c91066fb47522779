package codescript

import (
	"fmt"
	"math"
	"strconv"
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindCallable:
		return "function"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String is the default textual rendering used by DISPLAY and by string
// concatenation. Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.data.(string)
	case KindNull:
		return ""
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.data.(int64))
	case KindFloat:
		return formatFloat(v.data.(float64))
	case KindCallable:
		return fmt.Sprintf("<builtin %s>", v.data.(Callable).Name())
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Inspect renders a value for display in tooling, quoting strings and
// spelling out null.
func (v Value) Inspect() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("%q", v.data.(string))
	case KindNull:
		return "null"
	default:
		return v.String()
	}
}

// Equal reports identity of kind and payload. It backs tests and tooling;
// the language itself has no equality operator.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindInt:
		return v.data.(int64) == other.data.(int64)
	case KindFloat:
		return v.data.(float64) == other.data.(float64)
	case KindString:
		return v.data.(string) == other.data.(string)
	default:
		return v.data == other.data
	}
}

// formatFloat prints the shortest decimal that round-trips, switching to
// exponent form only for magnitudes below 1e-6 or from 1e21 up.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
