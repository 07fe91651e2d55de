// Package both holds one conforming processor of each shape.
package both

import (
	"iter"

	"github.com/unbound-force/plugreg/pkg/contract"
)

//plugreg:processor
type CorrectProcessor struct{}

func (CorrectProcessor) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return false
}

func (CorrectProcessor) Init(env contract.ProcessingEnv) {}

func (CorrectProcessor) SupportedSourceVersion() contract.SourceVersion {
	return contract.Latest
}

func (CorrectProcessor) SupportedAnnotationTypes() []string {
	return []string{"*"}
}

func (CorrectProcessor) SupportedOptions() []string {
	return nil
}

func (CorrectProcessor) Completions(contract.Element, contract.AnnotationMirror, contract.ExecutableElement, string) iter.Seq[contract.Completion] {
	return nil
}

//plugreg:processor
type CorrectAbstractProcessor struct {
	contract.BaseProcessor
}

func (p *CorrectAbstractProcessor) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return true
}
