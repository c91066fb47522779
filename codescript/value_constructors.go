package codescript

func NewNull() Value               { return Value{kind: KindNull} }
func NewBool(b bool) Value         { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value         { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value     { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value     { return Value{kind: KindString, data: s} }
func NewCallable(c Callable) Value { return Value{kind: KindCallable, data: c} }

func NewBuiltin(name string, fn BuiltinFunc) Value {
	return NewCallable(&Builtin{name: name, fn: fn})
}
