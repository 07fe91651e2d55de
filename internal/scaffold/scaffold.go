// Package scaffold embeds a starter configuration and example
// processor and writes them to a target project directory.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed assets/*
var assets embed.FS

// asset maps an embedded file to its path in the target project.
type asset struct {
	src string
	out string
}

var manifest = []asset{
	{src: "plugreg.yaml", out: ".plugreg.yaml"},
	{src: "example.go.tmpl", out: "plugins/example/example.go"},
}

// Options configures the scaffold operation.
type Options struct {
	// TargetDir is the root directory to scaffold into.
	// Defaults to the current working directory.
	TargetDir string

	// Force overwrites existing files when true.
	// When false, existing files are skipped.
	Force bool

	// Version is the plugreg version string to embed in the
	// version marker comment. Defaults to "dev".
	Version string

	// Stdout is the writer for summary output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what the scaffold operation did. Paths are
// slash-separated and relative to the target directory.
type Result struct {
	// Created lists files that were written for the first time.
	Created []string

	// Skipped lists files that already existed and were not
	// overwritten (Force was false).
	Skipped []string

	// Overwritten lists files that existed and were replaced
	// (Force was true).
	Overwritten []string
}

// versionMarker returns the marker comment prepended to a file with
// the given output path.
func versionMarker(out, version string) string {
	if version == "" {
		version = "dev"
	}
	if strings.HasSuffix(out, ".go") {
		return fmt.Sprintf("// Scaffolded by plugreg %s.\n\n", version)
	}
	return fmt.Sprintf("# scaffolded by plugreg %s\n", version)
}

// Run writes the starter files into the target directory.
//
// If a file already exists and opts.Force is false, the file is
// skipped. If opts.Force is true, the file is overwritten.
func Run(opts Options) (*Result, error) {
	if opts.TargetDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		opts.TargetDir = cwd
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	goModPath := filepath.Join(opts.TargetDir, "go.mod")
	if _, err := os.Stat(goModPath); os.IsNotExist(err) {
		fmt.Fprintln(opts.Stdout, "Warning: no go.mod found in current directory.")
		fmt.Fprintln(opts.Stdout, "plugreg checks packages of a Go module.")
		fmt.Fprintln(opts.Stdout)
	}

	result := &Result{}
	for _, a := range manifest {
		outPath := filepath.Join(opts.TargetDir, filepath.FromSlash(a.out))

		_, statErr := os.Stat(outPath)
		exists := statErr == nil
		if exists && !opts.Force {
			result.Skipped = append(result.Skipped, a.out)
			continue
		}

		content, err := assets.ReadFile(path.Join("assets", a.src))
		if err != nil {
			return nil, fmt.Errorf("reading embedded asset %s: %w", a.src, err)
		}

		dir := filepath.Dir(outPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}

		out := append([]byte(versionMarker(a.out, opts.Version)), content...)
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return nil, fmt.Errorf("creating %s: %w", a.out, err)
		}

		if exists {
			result.Overwritten = append(result.Overwritten, a.out)
		} else {
			result.Created = append(result.Created, a.out)
		}
	}

	printSummary(opts.Stdout, result)
	return result, nil
}

// printSummary writes a human-readable summary of the scaffold
// operation to w.
func printSummary(w io.Writer, r *Result) {
	fmt.Fprintln(w, "plugreg project initialized:")

	for _, f := range r.Created {
		fmt.Fprintf(w, "  created: %s\n", f)
	}
	for _, f := range r.Skipped {
		fmt.Fprintf(w, "  skipped: %s (already exists)\n", f)
	}
	for _, f := range r.Overwritten {
		fmt.Fprintf(w, "  overwritten: %s\n", f)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run plugreg check to verify processors and write the registry.")

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "%d file(s) skipped (use --force to overwrite).\n", len(r.Skipped))
	}
}

// OutputPaths returns the target-relative paths Run writes.
func OutputPaths() []string {
	out := make([]string, len(manifest))
	for i, a := range manifest {
		out[i] = a.out
	}
	return out
}
