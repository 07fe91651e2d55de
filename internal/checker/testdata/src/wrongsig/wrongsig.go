// Package wrongsig holds processors whose Process has the right name
// but the wrong signature.
package wrongsig

import "github.com/unbound-force/plugreg/pkg/contract"

//plugreg:processor
type WrongParams struct {
	contract.BaseProcessor
}

func (p *WrongParams) Process(annotations []string, round contract.RoundEnv) bool {
	return false
}

//plugreg:processor
type WrongResult struct {
	contract.BaseProcessor
}

func (p *WrongResult) Process(annotations []contract.TypeElement, round contract.RoundEnv) error {
	return nil
}

//plugreg:processor
type Variadic struct {
	contract.BaseProcessor
}

func (p *Variadic) Process(round contract.RoundEnv, annotations ...contract.TypeElement) bool {
	return false
}

//plugreg:processor
type MissingParam struct {
	contract.BaseProcessor
}

func (p *MissingParam) Process(annotations []contract.TypeElement) bool {
	return false
}
