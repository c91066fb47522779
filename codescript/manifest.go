package codescript

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultManifestName is looked up in the working directory when no script is
// named on the command line.
const DefaultManifestName = "codescript.yml"

// Manifest describes a project: its name and the script to run.
type Manifest struct {
	Path string
	Name string
	Main string
}

type manifestFile struct {
	Name string `yaml:"name"`
	Main string `yaml:"main"`
}

// ManifestError aggregates manifest validation failures.
type ManifestError struct {
	Path   string
	Issues []string
}

func (e *ManifestError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "manifest %s is invalid:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses a manifest from disk and validates it.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := &Manifest{
		Path: absPath,
		Name: strings.TrimSpace(raw.Name),
		Main: strings.TrimSpace(raw.Main),
	}
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	errs := ManifestError{Path: m.Path}
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if m.Main == "" {
		errs.Issues = append(errs.Issues, "main must name a script")
	} else if filepath.IsAbs(m.Main) {
		errs.Issues = append(errs.Issues, "main must be relative to the manifest")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// MainPath resolves Main against the manifest's directory.
func (m *Manifest) MainPath() string {
	return filepath.Join(filepath.Dir(m.Path), filepath.FromSlash(m.Main))
}
