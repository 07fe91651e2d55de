// Package complexity measures the cyclomatic complexity of processor
// methods with gocyclo.
package complexity

import (
	"strings"

	"github.com/fzipp/gocyclo"
	"golang.org/x/tools/go/packages"

	"github.com/unbound-force/plugreg/internal/taxonomy"
)

// Process returns the cyclomatic complexity of typeName's Process
// method in pkg, or 0 when the type declares none.
func Process(pkg *packages.Package, typeName string) int {
	return Method(pkg, typeName, "Process")
}

// Method returns the cyclomatic complexity of the method declared on
// typeName with either receiver kind, or 0 when there is none.
func Method(pkg *packages.Package, typeName, method string) int {
	if pkg == nil || pkg.Fset == nil {
		return 0
	}

	var stats gocyclo.Stats
	for _, f := range pkg.Syntax {
		stats = gocyclo.AnalyzeASTFile(f, pkg.Fset, stats)
	}

	value := "(" + typeName + ")." + method
	pointer := "(*" + typeName + ")." + method
	for _, s := range stats {
		if s.FuncName == value || s.FuncName == pointer {
			return s.Complexity
		}
	}
	return 0
}

// Annotate fills ProcessComplexity for every registration declared in
// one of pkgs. Registrations from other packages are left untouched.
func Annotate(pkgs []*packages.Package, regs []taxonomy.Registration) {
	byPath := make(map[string]*packages.Package, len(pkgs))
	for _, p := range pkgs {
		byPath[p.PkgPath] = p
	}

	for i := range regs {
		dot := strings.LastIndex(regs[i].Name, ".")
		if dot < 0 {
			continue
		}
		if p, ok := byPath[regs[i].Name[:dot]]; ok {
			regs[i].ProcessComplexity = Process(p, regs[i].Name[dot+1:])
		}
	}
}
