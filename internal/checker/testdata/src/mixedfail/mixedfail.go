// Package mixedfail holds a conforming processor next to a marked
// type that is not a processor.
package mixedfail

import "github.com/unbound-force/plugreg/pkg/contract"

//plugreg:processor
type GoodProcessor struct {
	contract.BaseProcessor
}

func (p *GoodProcessor) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return false
}

//plugreg:processor
type Stray struct{}
