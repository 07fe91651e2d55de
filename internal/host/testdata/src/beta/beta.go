// Package beta holds a conforming processor and two misplaced
// directives.
package beta

import "github.com/unbound-force/plugreg/pkg/contract"

//plugreg:processor
type Beta struct {
	contract.BaseProcessor
}

func (b *Beta) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return false
}

//plugreg:processor
func NewBeta() *Beta {
	return &Beta{}
}

//plugreg:processor fast
type Tagged struct{}
