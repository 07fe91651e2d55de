// Package config loads the .plugreg.yaml project configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileNames are the configuration files looked up in a project root,
// in order.
var FileNames = []string{".plugreg.yaml", ".plugreg.yml"}

// Config is the project configuration. Command-line flags override
// the corresponding fields.
type Config struct {
	// Version of the configuration format. Only 1 is known.
	Version int `yaml:"version"`

	// Output is the output root the registry is written under.
	Output string `yaml:"output"`

	// Rounds is "package" or "single".
	Rounds string `yaml:"rounds"`

	// Format is "text" or "json".
	Format string `yaml:"format"`

	// Packages are the package patterns checked when none are given
	// on the command line.
	Packages []string `yaml:"packages"`

	// Include, when set, restricts checking to package directories
	// matching at least one pattern.
	Include []string `yaml:"include"`

	// Exclude skips package directories matching any pattern.
	Exclude []string `yaml:"exclude"`

	// Complexity configures Process complexity warnings.
	Complexity ComplexityConfig `yaml:"complexity"`
}

// ComplexityConfig configures complexity reporting.
type ComplexityConfig struct {
	// MaxProcess emits a warning for registered processors whose
	// Process method is more complex. Zero disables the warning.
	MaxProcess int `yaml:"max_process"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Output:   ".",
		Rounds:   "package",
		Format:   "text",
		Packages: []string{"./..."},
		Exclude:  []string{"testdata/**", "vendor/**"},
	}
}

// Load reads the configuration at path. Fields missing from the file
// keep their defaults. An empty file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find returns the path of the first configuration file in dir, or
// "" when there is none.
func Find(dir string) string {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadDir loads the configuration file found in dir, or the defaults
// when there is none.
func LoadDir(dir string) (*Config, string, error) {
	p := Find(dir)
	if p == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := Load(p)
	return cfg, p, err
}

// Validate checks field values.
func (c *Config) Validate() error {
	var errs []error
	if c.Version != 1 {
		errs = append(errs, fmt.Errorf("unsupported version %d", c.Version))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	switch c.Rounds {
	case "package", "single":
	default:
		errs = append(errs, fmt.Errorf("rounds must be package or single, got %q", c.Rounds))
	}
	switch c.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("format must be text or json, got %q", c.Format))
	}
	if c.Complexity.MaxProcess < 0 {
		errs = append(errs, fmt.Errorf("complexity.max_process must be >= 0, got %d", c.Complexity.MaxProcess))
	}
	for _, p := range append(append([]string(nil), c.Include...), c.Exclude...) {
		if _, err := filepath.Match(strings.TrimSuffix(p, "/**"), ""); err != nil {
			errs = append(errs, fmt.Errorf("bad pattern %q: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// Included reports whether the package directory rel, relative to
// the project root, passes the include and exclude patterns.
//
// If include patterns are set, rel must match one of them. A match
// against any exclude pattern then drops it.
func (c *Config) Included(rel string) bool {
	rel = filepath.ToSlash(rel)

	if len(c.Include) > 0 {
		matched := false
		for _, pattern := range c.Include {
			if matchGlob(pattern, rel) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, pattern := range c.Exclude {
		if matchGlob(pattern, rel) {
			return false
		}
	}
	return true
}

// matchGlob matches a path against a glob pattern. It supports
// filepath.Match syntax and "dir/**" prefix patterns. A "dir/**"
// pattern also matches nested occurrences such as "a/testdata/b".
func matchGlob(pattern, rel string) bool {
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
			return true
		}
		if !strings.Contains(prefix, "/") {
			return strings.Contains("/"+rel+"/", "/"+prefix+"/")
		}
		return false
	}

	matched, err := filepath.Match(pattern, rel)
	if err != nil {
		return false
	}
	return matched
}
