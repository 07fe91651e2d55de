package checker

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/unbound-force/plugreg/internal/registry"
)

// ContractPath is the import path of the plugin contract package.
const ContractPath = "github.com/unbound-force/plugreg/pkg/contract"

const (
	contractTypeName = "Processor"
	baseTypeName     = "BaseProcessor"
)

// Qualified names used in diagnostics.
const (
	ContractName = ContractPath + "." + contractTypeName
	BaseName     = ContractPath + "." + baseTypeName
)

// RegistryPath is where the registry file for the contract lives,
// relative to the output root.
var RegistryPath = registry.Path(ContractName)

// noResult renders the result of a method that returns nothing.
const noResult = "none"

// Operation is one required contract method: its name, rendered
// parameter types in order, and rendered result.
type Operation struct {
	Name   string
	Params []string
	Result string
}

// Signature renders op as it appears in diagnostics.
func (op Operation) Signature() string {
	return fmt.Sprintf("%s(%s) (ReturnType %s)", op.Name, strings.Join(op.Params, ", "), op.Result)
}

var processOperation = Operation{
	Name:   "Process",
	Params: []string{"[]" + ContractPath + ".TypeElement", ContractPath + ".RoundEnv"},
	Result: "bool",
}

// Operations lists every contract method in the order an
// implementing type is validated.
var Operations = []Operation{
	{
		Name:   "SupportedOptions",
		Result: "[]string",
	},
	{
		Name:   "SupportedAnnotationTypes",
		Result: "[]string",
	},
	{
		Name:   "SupportedSourceVersion",
		Result: ContractPath + ".SourceVersion",
	},
	{
		Name:   "Init",
		Params: []string{ContractPath + ".ProcessingEnv"},
		Result: noResult,
	},
	processOperation,
	{
		Name: "Completions",
		Params: []string{
			ContractPath + ".Element",
			ContractPath + ".AnnotationMirror",
			ContractPath + ".ExecutableElement",
			"string",
		},
		Result: "iter.Seq[" + ContractPath + ".Completion]",
	},
}

// missingOperations returns the operations of ops that tn does not
// declare with a matching signature. Every operation is checked; the
// result keeps the order of ops. contract supplies the declared
// signatures to compare against and may be nil.
func missingOperations(tn *types.TypeName, ops []Operation, contract *types.Interface) []Operation {
	methods := declaredMethods(tn)
	var missing []Operation
	for _, op := range ops {
		if !hasMethod(methods, op, contractMethod(contract, op.Name)) {
			missing = append(missing, op)
		}
	}
	return missing
}

// contractMethod returns the method of iface named name, or nil.
func contractMethod(iface *types.Interface, name string) *types.Func {
	if iface == nil {
		return nil
	}
	for i := 0; i < iface.NumMethods(); i++ {
		if m := iface.Method(i); m.Name() == name {
			return m
		}
	}
	return nil
}

// declaredMethods returns the methods declared directly on tn with
// either receiver kind. Promoted methods are not included.
func declaredMethods(tn *types.TypeName) []*types.Func {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}
	named = named.Origin()
	methods := make([]*types.Func, 0, named.NumMethods())
	for i := 0; i < named.NumMethods(); i++ {
		methods = append(methods, named.Method(i))
	}
	return methods
}

// hasMethod reports whether methods contains op. A method matches
// when its signature is identical to want's (aliases denote the same
// type), or, failing that, when its rendered parameter and result
// types equal op's. Assignability is not considered.
func hasMethod(methods []*types.Func, op Operation, want *types.Func) bool {
	for _, m := range methods {
		if m.Name() != op.Name {
			continue
		}
		sig, ok := m.Type().(*types.Signature)
		if !ok {
			continue
		}
		if want != nil && types.Identical(sig, want.Type()) {
			return true
		}
		if renderedMatch(sig, op) {
			return true
		}
	}
	return false
}

// renderedMatch compares sig with op by rendered type strings. It
// covers contract types loaded through a different importer.
func renderedMatch(sig *types.Signature, op Operation) bool {
	params := renderParams(sig)
	if len(params) != len(op.Params) {
		return false
	}
	for i := range params {
		if params[i] != op.Params[i] {
			return false
		}
	}
	return renderResult(sig) == op.Result
}

// renderParams renders the parameter types of sig with fully
// qualified package paths. A variadic parameter renders as "...T".
func renderParams(sig *types.Signature) []string {
	n := sig.Params().Len()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		t := sig.Params().At(i).Type()
		if sig.Variadic() && i == n-1 {
			if s, ok := t.(*types.Slice); ok {
				out[i] = "..." + types.TypeString(s.Elem(), nil)
				continue
			}
		}
		out[i] = types.TypeString(t, nil)
	}
	return out
}

// renderResult renders the results of sig: noResult for none, the
// bare type for one, a parenthesised list otherwise.
func renderResult(sig *types.Signature) string {
	res := sig.Results()
	switch res.Len() {
	case 0:
		return noResult
	case 1:
		return types.TypeString(res.At(0).Type(), nil)
	}
	parts := make([]string, res.Len())
	for i := 0; i < res.Len(); i++ {
		parts[i] = types.TypeString(res.At(i).Type(), nil)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func neitherMessage(name string) string {
	return fmt.Sprintf("%s is neither extending %s nor implementing %s. Best practice is to extend %s.",
		name, BaseName, ContractName, BaseName)
}

func missingMessage(name string, op Operation) string {
	return fmt.Sprintf("%s is not overriding %s#%s.", name, ContractName, op.Signature())
}

func genericMessage(name string) string {
	return fmt.Sprintf("%s is generic. Generic types cannot be registered as processors.", name)
}

func interfaceMessage(name string) string {
	return fmt.Sprintf("%s is an interface type. Only concrete types can be registered as processors.", name)
}
