package codescript

import "errors"

// Script is a parsed program ready to run any number of times.
type Script struct {
	engine  *Engine
	program *Program
	source  string
}

// Compile parses source. Parse errors are combined into one error.
func (e *Engine) Compile(source string) (*Script, error) {
	p := newParser(source)
	program, parseErrors := p.ParseProgram()
	if len(parseErrors) > 0 {
		return nil, combineErrors(parseErrors)
	}
	return &Script{engine: e, program: program, source: source}, nil
}

// Program returns the parsed syntax tree. Callers must not modify it.
func (s *Script) Program() *Program {
	return s.program
}

// Run executes the script once against a fresh environment.
func (s *Script) Run() error {
	return s.RunIn(s.engine.NewExecution())
}

// RunIn executes the script against exec, keeping whatever bindings earlier
// runs left behind. The first error aborts the run.
func (s *Script) RunIn(exec *Execution) error {
	if exec == nil {
		return errors.New("codescript: nil execution")
	}
	previous := exec.script
	exec.script = s
	defer func() {
		exec.script = previous
	}()
	return exec.evalStatements(s.program.Statements)
}
