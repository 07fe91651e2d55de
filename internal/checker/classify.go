package checker

import (
	"go/types"

	"github.com/unbound-force/plugreg/internal/taxonomy"
)

// classify decides how tn relates to the contract. Embedding the
// base wins over satisfying the interface, so a type that embeds the
// base is only asked for Process.
func (c *Checker) classify(tn *types.TypeName) taxonomy.Shape {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return taxonomy.Neither
	}

	if c.base != nil && embeds(named, c.base, make(map[*types.Named]bool)) {
		return taxonomy.ExtendsBase
	}
	if c.contract != nil && satisfies(named, c.contract) {
		return taxonomy.ImplementsContract
	}
	return taxonomy.Neither
}

// unregistrable returns the diagnostic for a marked type no registry
// entry can name, or "" when tn is a candidate. A registry entry must
// name a concrete, non-generic type.
func unregistrable(tn *types.TypeName, name string) string {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return ""
	}
	if named.TypeParams().Len() > 0 {
		return genericMessage(name)
	}
	if types.IsInterface(named) {
		return interfaceMessage(name)
	}
	return ""
}

// embeds reports whether named is a struct that embeds base, by
// value or pointer, directly or through embedded structs.
func embeds(named *types.Named, base *types.TypeName, visiting map[*types.Named]bool) bool {
	named = named.Origin()
	if visiting[named] {
		return false
	}
	visiting[named] = true

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}
		ft := field.Type()
		if ptr, ok := ft.(*types.Pointer); ok {
			ft = ptr.Elem()
		}
		fn, ok := ft.(*types.Named)
		if !ok {
			continue
		}
		if sameTypeName(fn.Origin().Obj(), base) {
			return true
		}
		if embeds(fn, base, visiting) {
			return true
		}
	}
	return false
}

// sameTypeName compares type names by identity, falling back to the
// qualified name when the objects come from different importers.
func sameTypeName(a, b *types.TypeName) bool {
	if a == b {
		return true
	}
	if a.Pkg() == nil || b.Pkg() == nil {
		return false
	}
	return a.Pkg().Path() == b.Pkg().Path() && a.Name() == b.Name()
}

// satisfies checks if typ or *typ implements the given interface.
func satisfies(typ types.Type, iface *types.Interface) bool {
	if types.Implements(typ, iface) {
		return true
	}
	// Also check pointer to type.
	ptr := types.NewPointer(typ)
	return types.Implements(ptr, iface)
}

// QualifiedName returns "<import path>.<Name>" for tn, or just the
// name for types outside any package.
func QualifiedName(tn *types.TypeName) string {
	if tn.Pkg() == nil {
		return tn.Name()
	}
	return tn.Pkg().Path() + "." + tn.Name()
}
