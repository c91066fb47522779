package codescript

import (
	"maps"
	"slices"
)

// Env is the single flat namespace of a run. Variables and functions share it;
// there are no nested scopes.
type Env struct {
	values map[string]Value
}

func newEnv(builtins map[string]Value) *Env {
	env := &Env{values: make(map[string]Value, len(builtins))}
	maps.Copy(env.values, builtins)
	return env
}

// Define binds name to val, replacing any previous binding.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

func (e *Env) Lookup(name string) (Value, error) {
	val, ok := e.values[name]
	if !ok {
		return NewNull(), newNameError("variable %s is not defined", name)
	}
	return val, nil
}

func (e *Env) LookupCallable(name string) (Callable, error) {
	val, ok := e.values[name]
	if !ok {
		return nil, newNameError("function %s is not defined", name)
	}
	fn := val.Callable()
	if fn == nil {
		return nil, newTypeError("variable %s is not a function", name)
	}
	return fn, nil
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.values))
}

// Snapshot returns a copy of every binding.
func (e *Env) Snapshot() map[string]Value {
	return maps.Clone(e.values)
}
