package codescript

import (
	"errors"
	"slices"
	"testing"
)

func TestEnvDefineAndLookup(t *testing.T) {
	env := newEnv(nil)
	env.Define("x", NewInt(1))
	env.Define("x", NewString("replaced"))

	val, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !val.Equal(NewString("replaced")) {
		t.Fatalf("expected latest binding, got %s", val.Inspect())
	}
}

func TestEnvLookupUndefined(t *testing.T) {
	env := newEnv(nil)
	_, err := env.Lookup("missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if classifyRuntimeErrorType(err) != runtimeErrorTypeName {
		t.Fatalf("expected NameError, got %v", err)
	}
	if err.Error() != "variable missing is not defined" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestEnvLookupCallable(t *testing.T) {
	engine := NewEngine(Config{})
	env := newEnv(engine.Builtins())
	env.Define("n", NewInt(3))

	fn, err := env.LookupCallable("DISPLAY")
	if err != nil {
		t.Fatalf("lookup DISPLAY failed: %v", err)
	}
	if fn.Name() != "DISPLAY" {
		t.Fatalf("unexpected callable %q", fn.Name())
	}

	if _, err := env.LookupCallable("nope"); classifyRuntimeErrorType(err) != runtimeErrorTypeName {
		t.Fatalf("expected NameError for unbound name, got %v", err)
	}
	if _, err := env.LookupCallable("n"); classifyRuntimeErrorType(err) != runtimeErrorTypeType {
		t.Fatalf("expected TypeError for non-callable, got %v", err)
	}
}

func TestEnvShadowingBuiltinReplacesIt(t *testing.T) {
	exec := NewEngine(Config{}).NewExecution()
	exec.Env().Define("DISPLAY", NewInt(5))

	_, err := exec.Env().LookupCallable("DISPLAY")
	if err == nil {
		t.Fatalf("expected error after rebinding DISPLAY")
	}
	var kindErr *kindError
	if !errors.As(err, &kindErr) || kindErr.kind != runtimeErrorTypeType {
		t.Fatalf("expected TypeError, got %v", err)
	}
}

func TestEnvNamesAndSnapshot(t *testing.T) {
	env := newEnv(nil)
	env.Define("b", NewInt(2))
	env.Define("a", NewInt(1))

	if names := env.Names(); !slices.Equal(names, []string{"a", "b"}) {
		t.Fatalf("unexpected names %v", names)
	}

	snap := env.Snapshot()
	snap["c"] = NewInt(3)
	if _, err := env.Lookup("c"); err == nil {
		t.Fatalf("snapshot should not alias the environment")
	}
}

func TestExecutionsDoNotShareBindings(t *testing.T) {
	engine := NewEngine(Config{})
	first := engine.NewExecution()
	second := engine.NewExecution()

	first.Env().Define("x", NewInt(1))
	if _, err := second.Env().Lookup("x"); err == nil {
		t.Fatalf("executions should have separate environments")
	}
}
