// Package rounda is the first of two packages checked in separate
// rounds.
package rounda

import "github.com/unbound-force/plugreg/pkg/contract"

//plugreg:processor
type First struct {
	contract.BaseProcessor
}

func (p *First) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return false
}
