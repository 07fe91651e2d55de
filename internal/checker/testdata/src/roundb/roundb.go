// Package roundb is the second of two packages checked in separate
// rounds.
package roundb

import "github.com/unbound-force/plugreg/pkg/contract"

//plugreg:processor
type Second struct {
	contract.BaseProcessor
}

func (p *Second) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return true
}
