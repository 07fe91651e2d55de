// Package host drives a processor through the round loop over a set
// of loaded packages, standing in for the host compiler: it provides
// type lookup, a diagnostic sink and a resource writer, delivers the
// marked types round by round and finishes with a terminal round.
package host

import (
	"fmt"
	"go/token"
	"go/types"
	"io"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"github.com/unbound-force/plugreg/internal/checker"
	"github.com/unbound-force/plugreg/internal/marker"
	"github.com/unbound-force/plugreg/internal/registry"
	"github.com/unbound-force/plugreg/internal/taxonomy"
)

// RoundMode selects how marked types are split into rounds.
type RoundMode string

// Round modes.
const (
	// RoundsPerPackage delivers one round per root package.
	RoundsPerPackage RoundMode = "package"

	// RoundsSingle delivers every root package in one round.
	RoundsSingle RoundMode = "single"
)

// Options configures a Compiler.
type Options struct {
	// OutputRoot is the directory resources are written under.
	// Defaults to the current directory.
	OutputRoot string

	// Rounds selects the round split. Defaults to RoundsPerPackage.
	Rounds RoundMode

	// Logger receives progress and marker warnings. Nil discards.
	Logger *charmlog.Logger
}

// Processor is driven by a Compiler. *checker.Checker implements it.
type Processor interface {
	Init(env checker.Env) error
	Process(round checker.Round) error
}

// Result is the outcome of a Run.
type Result struct {
	// Diagnostics lists every reported diagnostic in emission order.
	Diagnostics []taxonomy.Diagnostic

	// Warnings lists ignored marker directives.
	Warnings []string

	// Rounds is the number of rounds delivered, terminal included.
	Rounds int

	// RegistryPath is where the registry file lives under the
	// output root.
	RegistryPath string

	// Written lists the files created during the run.
	Written []string
}

// Failed reports whether any error diagnostic was emitted.
func (r *Result) Failed() bool {
	return taxonomy.CountSeverity(r.Diagnostics, taxonomy.SeverityError) > 0
}

// Compiler plays the host compiler for one invocation.
type Compiler struct {
	pkgs   []*packages.Package
	fset   *token.FileSet
	opts   Options
	logger *charmlog.Logger

	index map[string]*packages.Package
	diags []taxonomy.Diagnostic
	filer *Filer
}

// New returns a Compiler over the given root packages. Their
// dependencies are reachable through LookupType.
func New(pkgs []*packages.Package, opts Options) *Compiler {
	if opts.OutputRoot == "" {
		opts.OutputRoot = "."
	}
	if opts.Rounds == "" {
		opts.Rounds = RoundsPerPackage
	}
	logger := opts.Logger
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}

	index := make(map[string]*packages.Package)
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		index[p.PkgPath] = p
	})

	var fset *token.FileSet
	if len(pkgs) > 0 {
		fset = pkgs[0].Fset
	}

	return &Compiler{
		pkgs:   pkgs,
		fset:   fset,
		opts:   opts,
		logger: logger,
		index:  index,
		filer:  NewFiler(opts.OutputRoot),
	}
}

// LookupType finds a package-level type anywhere in the loaded
// package graph.
func (c *Compiler) LookupType(pkgPath, name string) (*types.TypeName, bool) {
	p, ok := c.index[pkgPath]
	if !ok || p.Types == nil {
		return nil, false
	}
	tn, ok := p.Types.Scope().Lookup(name).(*types.TypeName)
	return tn, ok
}

// Report records a diagnostic.
func (c *Compiler) Report(d taxonomy.Diagnostic) {
	c.logger.Debug("diagnostic", "type", d.Type, "operation", d.Operation)
	c.diags = append(c.diags, d)
}

// Run initializes p, delivers every round and the terminal round.
// An error from p aborts the run.
func (c *Compiler) Run(p Processor) (*Result, error) {
	env := checker.Env{
		Types:    c,
		Messager: c,
		Filer:    c.filer,
		Fset:     c.fset,
	}
	if err := p.Init(env); err != nil {
		return nil, fmt.Errorf("initializing processor: %w", err)
	}

	rounds, warnings := c.buildRounds()
	for i, r := range rounds {
		c.logger.Debug("round", "n", i+1, "packages", r.pkgs, "marked", len(r.marked))
		if err := p.Process(r); err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
	}

	c.logger.Debug("terminal round", "n", len(rounds)+1)
	if err := p.Process(&round{over: true}); err != nil {
		return nil, fmt.Errorf("terminal round: %w", err)
	}

	return &Result{
		Diagnostics:  c.diags,
		Warnings:     warnings,
		Rounds:       len(rounds) + 1,
		RegistryPath: registry.File(c.opts.OutputRoot, checker.ContractName),
		Written:      c.filer.Written(),
	}, nil
}

// buildRounds scans the root packages for marked types and groups
// them by the configured mode. Ignored directives are logged as
// warnings and returned.
func (c *Compiler) buildRounds() ([]*round, []string) {
	var rounds []*round
	var warnings []string
	single := &round{}

	for _, p := range c.pkgs {
		res := marker.Scan(p.Syntax)
		for _, m := range res.Misuses {
			pos := p.Fset.Position(m.Pos).String()
			c.logger.Warn("ignoring directive", "pos", pos, "reason", m.Reason)
			warnings = append(warnings, pos+": "+m.Reason)
		}

		marked := marker.TypesIn(p.TypesInfo, res.Marked)
		if c.opts.Rounds == RoundsSingle {
			single.marked = append(single.marked, marked...)
			single.pkgs = append(single.pkgs, p.PkgPath)
			continue
		}
		rounds = append(rounds, &round{marked: marked, pkgs: []string{p.PkgPath}})
	}

	if c.opts.Rounds == RoundsSingle {
		rounds = append(rounds, single)
	}
	return rounds, warnings
}

// Packages returns the root packages.
func (c *Compiler) Packages() []*packages.Package {
	return c.pkgs
}

// round implements checker.Round.
type round struct {
	over   bool
	marked []*types.TypeName
	pkgs   []string
}

func (r *round) Over() bool {
	return r.over
}

func (r *round) MarkedTypes() []*types.TypeName {
	return r.marked
}
