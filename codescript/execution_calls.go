package codescript

func (exec *Execution) evalCallArgs(call *CallExpr) ([]Value, error) {
	args := make([]Value, len(call.Args))
	for i, arg := range call.Args {
		val, err := exec.evalExpression(arg)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}
	return args, nil
}

// evalCallExpr evaluates the arguments before resolving the callee, so an
// argument's side effects happen even when the name turns out to be unbound.
func (exec *Execution) evalCallExpr(call *CallExpr) (Value, error) {
	args, err := exec.evalCallArgs(call)
	if err != nil {
		return NewNull(), err
	}
	fn, err := exec.env.LookupCallable(call.Name)
	if err != nil {
		return NewNull(), exec.wrapError(err, call.Pos())
	}
	return exec.invokeCallable(fn, args, call.Pos())
}

func (exec *Execution) invokeCallable(fn Callable, args []Value, pos Position) (Value, error) {
	result, err := fn.Call(exec, args)
	if err != nil {
		return NewNull(), exec.wrapError(err, pos)
	}
	return result, nil
}
