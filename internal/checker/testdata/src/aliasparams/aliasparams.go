// Package aliasparams declares processors whose method signatures
// spell contract types through aliases.
package aliasparams

import (
	"iter"

	"github.com/unbound-force/plugreg/pkg/contract"
)

type (
	Elem        = contract.TypeElement
	Round       = contract.RoundEnv
	Names       = []string
	Env         = contract.ProcessingEnv
	Suggestions = iter.Seq[contract.Completion]
)

//plugreg:processor
type AliasProcessor struct {
	contract.BaseProcessor
}

func (p *AliasProcessor) Process(annotations []Elem, round Round) bool {
	return false
}

//plugreg:processor
type AliasDirect struct{}

func (AliasDirect) SupportedOptions() Names { return nil }

func (AliasDirect) SupportedAnnotationTypes() Names { return Names{"*"} }

func (AliasDirect) SupportedSourceVersion() contract.SourceVersion { return contract.Latest }

func (AliasDirect) Init(env Env) {}

func (AliasDirect) Process(annotations []Elem, round Round) bool { return true }

func (AliasDirect) Completions(contract.Element, contract.AnnotationMirror, contract.ExecutableElement, string) Suggestions {
	return nil
}

var (
	_ contract.Processor = (*AliasProcessor)(nil)
	_ contract.Processor = AliasDirect{}
)
