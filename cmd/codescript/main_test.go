package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"codescript", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"codescript", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"codescript"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandCheckOnly(t *testing.T) {
	scriptPath := writeScript(t, `DISPLAY("never printed")`)

	out, err := captureStdout(t, func() error {
		return runCommand([]string{"-check", scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand check failed: %v", err)
	}
	if out != "" {
		t.Fatalf("check mode should not execute, got %q", out)
	}
}

func TestRunCommandCheckReportsParseErrors(t *testing.T) {
	scriptPath := writeScript(t, `x = (1 + 2`)

	err := runCommand([]string{"-check", scriptPath})
	if err == nil {
		t.Fatalf("expected compile error")
	}
	if !strings.Contains(err.Error(), "compile failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandExecutesScript(t *testing.T) {
	scriptPath := writeScript(t, `i = 1
while i < 3 {
  DISPLAY(i)
  i = i + 1
}`)

	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if out != "1\n2\n" {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCommandReportsRuntimeErrors(t *testing.T) {
	scriptPath := writeScript(t, `DISPLAY(missing)`)

	_, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err == nil {
		t.Fatalf("expected runtime error")
	}
	if !strings.Contains(err.Error(), "execution failed") || !strings.Contains(err.Error(), "NameError") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandUsesManifestMain(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "src", "main.code"), []byte(`DISPLAY("from manifest")`), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	manifestPath := filepath.Join(dir, "codescript.yml")
	if err := os.WriteFile(manifestPath, []byte("name: demo\nmain: src/main.code\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runCommand([]string{"-manifest", manifestPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if out != "from manifest\n" {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCommandRequiresScriptPath(t *testing.T) {
	t.Chdir(t.TempDir())

	err := runCommand(nil)
	if err == nil {
		t.Fatalf("expected script path error")
	}
	if !strings.Contains(err.Error(), "script path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandRejectsExtraArguments(t *testing.T) {
	err := runCommand([]string{"a.code", "b.code"})
	if err == nil {
		t.Fatalf("expected argument error")
	}
	if !strings.Contains(err.Error(), "at most one script path") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyzeCommandNoIssues(t *testing.T) {
	scriptPath := writeScript(t, `value = 1
DISPLAY(value + 2)`)

	out, err := captureStdout(t, func() error {
		return analyzeCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("analyzeCommand failed: %v", err)
	}
	if !strings.Contains(out, "No issues found") {
		t.Fatalf("unexpected analyze output: %q", out)
	}
}

func TestAnalyzeCommandReportsUnsupportedConstructs(t *testing.T) {
	scriptPath := writeScript(t, `x = 2 * 3
if x < 10 {
  DISPLAY(y)
}`)

	out, err := captureStdout(t, func() error {
		return analyzeCommand([]string{scriptPath})
	})
	if err == nil {
		t.Fatalf("expected analyze command to report lint failures")
	}
	if !strings.Contains(err.Error(), "analysis found 3 issue(s)") {
		t.Fatalf("unexpected analyze error: %v", err)
	}
	for _, want := range []string{"operator * is not supported", "if statements are not supported", "y is never assigned"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in analyze output, got %q", want, out)
		}
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.code")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
