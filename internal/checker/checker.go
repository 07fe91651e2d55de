// Package checker implements the conformance checker and registry
// writer. It runs inside a host's round loop, verifies that every
// marked type has the shape of the plugin contract, and writes the
// service registry once the host reports the terminal round, but
// only when every marked type of the run conformed.
package checker

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"io"

	charmlog "github.com/charmbracelet/log"

	"github.com/unbound-force/plugreg/internal/registry"
	"github.com/unbound-force/plugreg/internal/taxonomy"
)

var (
	// ErrNotInitialized is returned by Process before Init.
	ErrNotInitialized = errors.New("checker: Process called before Init")

	// ErrRunFinished is returned by Process after the terminal round.
	ErrRunFinished = errors.New("checker: run already finished")

	// ErrRegistryWrite wraps every I/O failure of the final write.
	ErrRegistryWrite = errors.New("registry write failed")
)

// TypeLookup resolves a type by package path and name.
type TypeLookup interface {
	LookupType(pkgPath, name string) (*types.TypeName, bool)
}

// Messager receives diagnostics.
type Messager interface {
	Report(d taxonomy.Diagnostic)
}

// Filer creates resources under the host's output root. relPath is
// slash-separated. An existing resource is truncated.
type Filer interface {
	Create(relPath string) (io.WriteCloser, error)
}

// Env bundles the host services the checker queries.
type Env struct {
	Types    TypeLookup
	Messager Messager
	Filer    Filer

	// Fset positions diagnostics. Optional.
	Fset *token.FileSet
}

// Round is one pass of the host over newly introduced declarations.
type Round interface {
	// Over reports whether this is the terminal round.
	Over() bool

	// MarkedTypes returns the types carrying the processor directive
	// among the declarations of this round, in source order.
	MarkedTypes() []*types.TypeName
}

// RunState is the state shared across the rounds of one invocation.
type RunState struct {
	// Eligible starts true and flips to false on the first
	// nonconforming type. It never flips back.
	Eligible bool

	// Accumulated lists the qualified names of conforming types in
	// discovery order.
	Accumulated []string
}

// Options configures a Checker.
type Options struct {
	// Logger receives debug output. Nil discards it.
	Logger *charmlog.Logger
}

// Checker is the conformance checker for one invocation. It is not
// safe for concurrent use; hosts deliver rounds sequentially.
type Checker struct {
	logger *charmlog.Logger
	env    Env

	contract *types.Interface
	base     *types.TypeName

	state    RunState
	seen     map[string]bool
	regs     []taxonomy.Registration
	round    int
	ready    bool
	finished bool
	written  bool
}

// New returns a Checker with a fresh RunState.
func New(opts Options) *Checker {
	logger := opts.Logger
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return &Checker{
		logger: logger,
		state:  RunState{Eligible: true},
		seen:   make(map[string]bool),
	}
}

// Init binds the checker to the host services and resolves the
// contract and base types once. A contract package missing from the
// host's type graph is not an error: no candidate can conform then.
func (c *Checker) Init(env Env) error {
	if env.Types == nil || env.Messager == nil || env.Filer == nil {
		return errors.New("checker: Env requires Types, Messager and Filer")
	}
	c.env = env

	if tn, ok := env.Types.LookupType(ContractPath, contractTypeName); ok {
		if iface, ok := tn.Type().Underlying().(*types.Interface); ok {
			c.contract = iface
		}
	}
	if tn, ok := env.Types.LookupType(ContractPath, baseTypeName); ok {
		c.base = tn
	}
	if c.contract == nil {
		c.logger.Debug("contract not in type graph", "pkg", ContractPath)
	}

	c.ready = true
	return nil
}

// Process handles one round. Non-terminal rounds check the marked
// types; the terminal round writes the registry. The only error a
// round can return besides misuse is a failed registry write.
func (c *Checker) Process(round Round) error {
	if !c.ready {
		return ErrNotInitialized
	}
	if c.finished {
		return ErrRunFinished
	}
	c.round++

	if round.Over() {
		c.finished = true
		return c.finalize()
	}

	for _, tn := range round.MarkedTypes() {
		c.check(tn)
	}
	return nil
}

// State returns a copy of the run state.
func (c *Checker) State() RunState {
	return RunState{
		Eligible:    c.state.Eligible,
		Accumulated: append([]string(nil), c.state.Accumulated...),
	}
}

// Registrations returns the conforming types in discovery order.
func (c *Checker) Registrations() []taxonomy.Registration {
	return append([]taxonomy.Registration(nil), c.regs...)
}

// Written reports whether the terminal round wrote the registry.
func (c *Checker) Written() bool {
	return c.written
}

// check classifies one candidate, validates it and records the
// outcome.
func (c *Checker) check(tn *types.TypeName) {
	name := QualifiedName(tn)
	if c.seen[name] {
		c.logger.Debug("skipping type seen in an earlier round", "type", name)
		return
	}
	c.seen[name] = true

	if msg := unregistrable(tn, name); msg != "" {
		c.fail(tn, "", msg)
		return
	}

	shape := c.classify(tn)
	c.logger.Debug("classified", "type", name, "shape", shape)

	var missing []Operation
	switch shape {
	case taxonomy.Neither:
		c.fail(tn, "", neitherMessage(name))
		return
	case taxonomy.ExtendsBase:
		missing = missingOperations(tn, []Operation{processOperation}, c.contract)
	case taxonomy.ImplementsContract:
		missing = missingOperations(tn, Operations, c.contract)
	}

	for _, op := range missing {
		c.fail(tn, op.Name, missingMessage(name, op))
	}
	if len(missing) > 0 {
		return
	}

	c.state.Accumulated = append(c.state.Accumulated, name)
	c.regs = append(c.regs, taxonomy.Registration{
		Name:     name,
		Shape:    shape,
		Location: c.location(tn),
		Round:    c.round,
	})
}

// fail emits an error diagnostic against tn and makes the run
// ineligible for registry emission.
func (c *Checker) fail(tn *types.TypeName, operation, msg string) {
	c.state.Eligible = false
	name := QualifiedName(tn)
	c.env.Messager.Report(taxonomy.Diagnostic{
		ID:        taxonomy.GenerateID(name, operation, msg),
		Severity:  taxonomy.SeverityError,
		Type:      name,
		Operation: operation,
		Message:   msg,
		Location:  c.location(tn),
	})
}

func (c *Checker) location(tn *types.TypeName) string {
	if c.env.Fset == nil || !tn.Pos().IsValid() {
		return ""
	}
	return c.env.Fset.Position(tn.Pos()).String()
}

// finalize writes the registry if the run stayed eligible. The
// writer is closed on every path.
func (c *Checker) finalize() error {
	if !c.state.Eligible {
		c.logger.Debug("registry not written: nonconforming types in run")
		return nil
	}
	if len(c.state.Accumulated) == 0 {
		c.logger.Debug("registry not written: no marked types")
		return nil
	}

	w, err := c.env.Filer.Create(RegistryPath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrRegistryWrite, RegistryPath, err)
	}
	_, werr := w.Write(registry.Encode(c.state.Accumulated))
	cerr := w.Close()
	if werr != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrRegistryWrite, RegistryPath, werr)
	}
	if cerr != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrRegistryWrite, RegistryPath, cerr)
	}

	c.written = true
	c.logger.Debug("registry written", "path", RegistryPath, "entries", len(c.state.Accumulated))
	return nil
}
