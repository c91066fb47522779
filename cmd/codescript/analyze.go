package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgomes/codescript/codescript"
)

type lintWarning struct {
	Pos     codescript.Position
	Message string
}

func analyzeCommand(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("codescript analyze: script path required")
	}

	scriptPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := codescript.NewEngine(codescript.Config{})
	script, err := engine.Compile(string(input))
	if err != nil {
		return fmt.Errorf("analysis compile failed: %w", err)
	}

	warnings := analyzeProgram(script.Program(), engine.Builtins())
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, warning := range warnings {
		fmt.Printf("%s:%d:%d: %s\n", scriptPath, max(warning.Pos.Line, 1), max(warning.Pos.Column, 1), warning.Message)
	}

	return fmt.Errorf("analysis found %d issue(s)", len(warnings))
}

// analyzeProgram reports constructs that would fail at run time regardless of
// input: syntax the evaluator rejects, and names that no statement ever binds.
func analyzeProgram(program *codescript.Program, builtins map[string]codescript.Value) []lintWarning {
	l := &linter{bound: make(map[string]struct{})}
	for name := range builtins {
		l.bound[name] = struct{}{}
	}
	l.collectBindings(program.Statements)
	l.statements(program.Statements)

	sort.SliceStable(l.warnings, func(i, j int) bool {
		if l.warnings[i].Pos.Line != l.warnings[j].Pos.Line {
			return l.warnings[i].Pos.Line < l.warnings[j].Pos.Line
		}
		return l.warnings[i].Pos.Column < l.warnings[j].Pos.Column
	})
	return l.warnings
}

type linter struct {
	bound    map[string]struct{}
	warnings []lintWarning
}

func (l *linter) warn(pos codescript.Position, format string, args ...any) {
	l.warnings = append(l.warnings, lintWarning{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (l *linter) collectBindings(statements []codescript.Statement) {
	for _, stmt := range statements {
		switch typed := stmt.(type) {
		case *codescript.AssignStmt:
			l.bound[typed.Name] = struct{}{}
		case *codescript.Block:
			l.collectBindings(typed.Statements)
		case *codescript.WhileStmt:
			l.collectBindings(typed.Body.Statements)
			if typed.Else != nil {
				l.collectBindings([]codescript.Statement{typed.Else})
			}
		case *codescript.IfStmt:
			l.collectBindings(typed.Consequent.Statements)
			if typed.Else != nil {
				l.collectBindings([]codescript.Statement{typed.Else})
			}
		}
	}
}

func (l *linter) statements(statements []codescript.Statement) {
	for _, stmt := range statements {
		l.statement(stmt)
	}
}

func (l *linter) statement(stmt codescript.Statement) {
	switch typed := stmt.(type) {
	case *codescript.AssignStmt:
		l.expression(typed.Value)
	case *codescript.CallStmt:
		l.expression(typed.Call)
	case *codescript.Block:
		l.statements(typed.Statements)
	case *codescript.WhileStmt:
		l.expression(typed.Condition)
		l.statements(typed.Body.Statements)
		if typed.Else != nil {
			l.statement(typed.Else)
		}
	case *codescript.IfStmt:
		l.warn(typed.Pos(), "if statements are not supported")
		l.expression(typed.Condition)
		l.statements(typed.Consequent.Statements)
		if typed.Else != nil {
			l.statement(typed.Else)
		}
	}
}

func (l *linter) expression(expr codescript.Expression) {
	switch typed := expr.(type) {
	case *codescript.Identifier:
		if _, ok := l.bound[typed.Name]; !ok {
			l.warn(typed.Pos(), "%s is never assigned", typed.Name)
		}
	case *codescript.CallExpr:
		if _, ok := l.bound[typed.Name]; !ok {
			l.warn(typed.Pos(), "function %s is not defined", typed.Name)
		}
		for _, arg := range typed.Args {
			l.expression(arg)
		}
	case *codescript.AdditiveExpr:
		l.expression(typed.Left)
		l.expression(typed.Right)
	case *codescript.ComparisonExpr:
		if typed.Operator != "<" {
			l.warn(typed.Pos(), "comparison operator %s is not supported", typed.Operator)
		}
		l.expression(typed.Left)
		l.expression(typed.Right)
	case *codescript.MultiplicativeExpr:
		l.warn(typed.Pos(), "operator %s is not supported", typed.Operator)
		l.expression(typed.Left)
		l.expression(typed.Right)
	case *codescript.BooleanExpr:
		l.warn(typed.Pos(), "operator %s is not supported", strings.ToLower(string(typed.Operator)))
		l.expression(typed.Left)
		l.expression(typed.Right)
	case *codescript.NotExpr:
		l.warn(typed.Pos(), "operator ! is not supported")
		l.expression(typed.Right)
	}
}
