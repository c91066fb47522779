package codescript

import (
	"fmt"
	"io"
)

// builtinDisplay writes each argument on its own line, in call order.
func builtinDisplay(exec *Execution, args []Value) (Value, error) {
	for _, arg := range args {
		if _, err := io.WriteString(exec.Stdout(), arg.String()+"\n"); err != nil {
			return NewNull(), fmt.Errorf("DISPLAY: %w", err)
		}
	}
	return NewNull(), nil
}
