package codescript

import (
	"io"
	"maps"
	"os"
)

// Config controls where scripts write their output.
type Config struct {
	// Stdout receives DISPLAY output. Defaults to os.Stdout.
	Stdout io.Writer
}

// Engine compiles CodeScript programs and holds the builtins every run is
// seeded with.
type Engine struct {
	config   Config
	builtins map[string]Value
}

// NewEngine constructs an Engine with defaults applied and DISPLAY registered.
func NewEngine(cfg Config) *Engine {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	engine := &Engine{
		config:   cfg,
		builtins: make(map[string]Value),
	}

	engine.RegisterBuiltin("DISPLAY", builtinDisplay)

	return engine
}

// RegisterBuiltin registers a callable global available to scripts. A later
// registration under the same name replaces the earlier one.
func (e *Engine) RegisterBuiltin(name string, fn BuiltinFunc) {
	e.builtins[name] = NewBuiltin(name, fn)
}

// Builtins returns a copy of the registered builtin map.
func (e *Engine) Builtins() map[string]Value {
	out := make(map[string]Value, len(e.builtins))
	maps.Copy(out, e.builtins)
	return out
}

// NewExecution returns an execution with a fresh environment seeded with the
// engine's builtins.
func (e *Engine) NewExecution() *Execution {
	return &Execution{
		env:    newEnv(e.builtins),
		stdout: e.config.Stdout,
	}
}
