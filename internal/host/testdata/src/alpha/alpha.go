// Package alpha holds one conforming processor.
package alpha

import "github.com/unbound-force/plugreg/pkg/contract"

//plugreg:processor
type Alpha struct {
	contract.BaseProcessor
}

func (a *Alpha) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return true
}
