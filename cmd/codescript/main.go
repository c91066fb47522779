package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgomes/codescript/codescript"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "analyze":
		return analyzeCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "only compile the script without executing")
	manifestPath := fs.String("manifest", "", "project manifest naming the entry script")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) > 1 {
		return errors.New("codescript run: expected at most one script path")
	}

	var scriptPath string
	if len(remaining) == 1 {
		scriptPath = remaining[0]
	} else {
		resolved, err := resolveManifestScript(*manifestPath)
		if err != nil {
			return err
		}
		scriptPath = resolved
	}

	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	engine := codescript.NewEngine(codescript.Config{Stdout: os.Stdout})
	script, err := engine.Compile(string(input))
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}
	if *checkOnly {
		return nil
	}
	if err := script.Run(); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}

// resolveManifestScript returns the entry script named by the manifest. An
// empty path falls back to the default manifest in the working directory.
func resolveManifestScript(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(codescript.DefaultManifestName); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", errors.New("codescript run: script path required (no " + codescript.DefaultManifestName + " found)")
			}
			return "", fmt.Errorf("access manifest: %w", err)
		}
		path = codescript.DefaultManifestName
	}
	manifest, err := codescript.LoadManifest(path)
	if err != nil {
		return "", err
	}
	return manifest.MainPath(), nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s run [flags] [script]\n", prog)
	fmt.Fprintf(os.Stderr, "       %s analyze <script>\n", prog)
	fmt.Fprintf(os.Stderr, "       %s repl\n", prog)
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -check")
	fmt.Fprintln(os.Stderr, "    only compile the script without executing")
	fmt.Fprintln(os.Stderr, "  -manifest <path>")
	fmt.Fprintf(os.Stderr, "    project manifest naming the entry script (default %q)\n", codescript.DefaultManifestName)
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
