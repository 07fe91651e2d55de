// Package correctabstract holds a processor that embeds the base and
// declares Process.
package correctabstract

import "github.com/unbound-force/plugreg/pkg/contract"

//plugreg:processor
type CorrectAbstractProcessor struct {
	contract.BaseProcessor
}

func (p *CorrectAbstractProcessor) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return len(annotations) > 0 && !round.ProcessingOver()
}
