package codescript

type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindCallable
)

// Value is an immutable runtime value. The zero Value is null.
type Value struct {
	kind ValueKind
	data any
}

// Callable is implemented by anything a script can invoke with call syntax.
type Callable interface {
	Name() string
	Call(exec *Execution, args []Value) (Value, error)
}

type BuiltinFunc func(exec *Execution, args []Value) (Value, error)

// Builtin is a native Callable registered by the host.
type Builtin struct {
	name string
	fn   BuiltinFunc
}

func (b *Builtin) Name() string { return b.name }

func (b *Builtin) Call(exec *Execution, args []Value) (Value, error) {
	return b.fn(exec, args)
}
