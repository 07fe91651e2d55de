// Package incorrectabstract holds a processor that embeds the base
// but never declares Process.
package incorrectabstract

import "github.com/unbound-force/plugreg/pkg/contract"

//plugreg:processor
type IncorrectAbstractProcessor struct {
	contract.BaseProcessor
}

func (p *IncorrectAbstractProcessor) Name() string {
	return "incorrect"
}
