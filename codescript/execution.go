package codescript

import "io"

// Execution walks a syntax tree against one environment. It is not safe for
// concurrent use.
type Execution struct {
	script *Script
	env    *Env
	stdout io.Writer
}

// Env exposes the execution's namespace.
func (exec *Execution) Env() *Env {
	return exec.env
}

// Globals returns a copy of every binding, builtins included.
func (exec *Execution) Globals() map[string]Value {
	return exec.env.Snapshot()
}

// Stdout is the writer DISPLAY prints to.
func (exec *Execution) Stdout() io.Writer {
	return exec.stdout
}

func (exec *Execution) evalStatements(stmts []Statement) error {
	for _, stmt := range stmts {
		if err := exec.evalStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (exec *Execution) evalStatement(stmt Statement) error {
	switch s := stmt.(type) {
	case *AssignStmt:
		val, err := exec.evalExpression(s.Value)
		if err != nil {
			return err
		}
		exec.env.Define(s.Name, val)
		return nil
	case *CallStmt:
		_, err := exec.evalCallExpr(s.Call)
		return err
	case *Block:
		return exec.evalStatements(s.Statements)
	case *WhileStmt:
		return exec.evalWhileStatement(s)
	default:
		return exec.errorAt(stmt.Pos(), runtimeErrorTypeUnsupported, "unsupported statement %T", stmt)
	}
}

func (exec *Execution) evalExpression(expr Expression) (Value, error) {
	switch e := expr.(type) {
	case *Identifier:
		val, err := exec.env.Lookup(e.Name)
		if err != nil {
			return NewNull(), exec.wrapError(err, e.Pos())
		}
		return val, nil
	case *Constant:
		return exec.evalConstant(e)
	case *CallExpr:
		return exec.evalCallExpr(e)
	case *AdditiveExpr:
		return exec.evalAdditiveExpr(e)
	case *ComparisonExpr:
		return exec.evalComparisonExpr(e)
	default:
		return NewNull(), exec.errorAt(expr.Pos(), runtimeErrorTypeUnsupported, "unsupported expression %T", expr)
	}
}
