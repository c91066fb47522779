package codescript

import (
	"errors"
	"fmt"
	"strings"
)

const (
	runtimeErrorTypeBase        = "RuntimeError"
	runtimeErrorTypeName        = "NameError"
	runtimeErrorTypeType        = "TypeError"
	runtimeErrorTypeUnsupported = "UnsupportedOperation"
)

// Sentinels for matching a *RuntimeError by type with errors.Is.
var (
	ErrNameError   = errors.New(runtimeErrorTypeName)
	ErrTypeError   = errors.New(runtimeErrorTypeType)
	ErrUnsupported = errors.New(runtimeErrorTypeUnsupported)
)

// RuntimeError aborts a script run. Nothing in the language can catch it.
type RuntimeError struct {
	Type      string
	Message   string
	Pos       Position
	CodeFrame string
}

func (re *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(re.Type)
	b.WriteString(": ")
	b.WriteString(re.Message)
	if re.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(re.CodeFrame)
	}
	if re.Pos.Line > 0 {
		fmt.Fprintf(&b, "\n  at <script> (%d:%d)", re.Pos.Line, re.Pos.Column)
	}
	return b.String()
}

func (re *RuntimeError) Is(target error) bool {
	switch target {
	case ErrNameError:
		return re.Type == runtimeErrorTypeName
	case ErrTypeError:
		return re.Type == runtimeErrorTypeType
	case ErrUnsupported:
		return re.Type == runtimeErrorTypeUnsupported
	default:
		return false
	}
}

// kindError is the position-less form raised by values, the environment and
// builtins. The evaluator turns it into a *RuntimeError at the failing node.
type kindError struct {
	kind    string
	message string
}

func (e *kindError) Error() string {
	return e.message
}

func newNameError(format string, args ...any) error {
	return &kindError{kind: runtimeErrorTypeName, message: fmt.Sprintf(format, args...)}
}

func newTypeError(format string, args ...any) error {
	return &kindError{kind: runtimeErrorTypeType, message: fmt.Sprintf(format, args...)}
}

func classifyRuntimeErrorType(err error) string {
	var kindErr *kindError
	if errors.As(err, &kindErr) {
		return kindErr.kind
	}
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr.Type
	}
	return runtimeErrorTypeBase
}

func (exec *Execution) errorAt(pos Position, kind string, format string, args ...any) error {
	return exec.newRuntimeError(kind, fmt.Sprintf(format, args...), pos)
}

func (exec *Execution) newRuntimeError(kind string, message string, pos Position) error {
	codeFrame := ""
	if exec.script != nil {
		codeFrame = formatCodeFrame(exec.script.source, pos)
	}
	return &RuntimeError{Type: kind, Message: message, Pos: pos, CodeFrame: codeFrame}
}

// wrapError attaches pos to err unless it already carries a position.
func (exec *Execution) wrapError(err error, pos Position) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*RuntimeError); ok {
		return err
	}
	return exec.newRuntimeError(classifyRuntimeErrorType(err), err.Error(), pos)
}

func combineErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := ""
	for _, err := range errs {
		if msg != "" {
			msg += "\n\n"
		}
		msg += err.Error()
	}
	return errors.New(msg)
}
