// Package deepembed holds processors that reach the base through a
// pointer or an intermediate struct.
package deepembed

import "github.com/unbound-force/plugreg/pkg/contract"

// Common is shared plumbing embedded by several processors.
type Common struct {
	*contract.BaseProcessor
	Verbose bool
}

//plugreg:processor
type DeepProcessor struct {
	Common
}

func (p DeepProcessor) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return p.Verbose
}

//plugreg:processor
type PointerProcessor struct {
	*contract.BaseProcessor
}

func (p PointerProcessor) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return false
}
