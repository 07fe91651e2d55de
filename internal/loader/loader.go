// Package loader wraps go/packages to load Go packages with full
// type information for conformance checking.
package loader

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode is the minimum set of flags the checker needs: syntax for
// marker directives, types for classification and signatures, and
// dependencies so the contract package can be looked up.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes

// Result holds the loaded root packages along with the shared file
// set.
type Result struct {
	// Pkgs are the root packages matched by the patterns, in the
	// order go/packages returned them.
	Pkgs []*packages.Package

	// Fset is the shared file set for position information.
	Fset *token.FileSet
}

// Load loads the Go packages matching patterns, resolved relative to
// dir (the current directory when empty). It returns an error if
// loading fails, nothing matches, or any root package has syntax or
// type errors.
func Load(dir string, patterns ...string) (*Result, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Mode:  LoadMode,
		Dir:   dir,
		Tests: false,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages %q: %w", patterns, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for patterns %q", patterns)
	}

	// Check for package-level errors (syntax, type errors, etc.).
	for _, pkg := range pkgs {
		var errs []string
		for _, e := range pkg.Errors {
			errs = append(errs, e.Error())
		}
		if len(errs) > 0 {
			return nil, fmt.Errorf("package %q has errors:\n  %s",
				pkg.PkgPath, strings.Join(errs, "\n  "))
		}
	}

	return &Result{
		Pkgs: pkgs,
		Fset: pkgs[0].Fset,
	}, nil
}

// Dirs returns the source directories of the packages matching
// patterns, in load order and without duplicates. Only file lists are
// loaded.
func Dirs(dir string, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages %q: %w", patterns, err)
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, pkg := range pkgs {
		if len(pkg.GoFiles) == 0 {
			continue
		}
		d := filepath.Dir(pkg.GoFiles[0])
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	return dirs, nil
}
