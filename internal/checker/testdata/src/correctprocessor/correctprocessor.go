// Package correctprocessor holds a processor that declares every
// contract method itself.
package correctprocessor

import (
	"iter"

	"github.com/unbound-force/plugreg/pkg/contract"
)

//plugreg:processor
type CorrectProcessor struct {
	env contract.ProcessingEnv
}

func (p *CorrectProcessor) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return false
}

func (p *CorrectProcessor) Init(env contract.ProcessingEnv) {
	p.env = env
}

func (p *CorrectProcessor) SupportedSourceVersion() contract.SourceVersion {
	return contract.Go1_22
}

func (p *CorrectProcessor) SupportedAnnotationTypes() []string {
	return []string{"example.com/markers.Entity"}
}

func (p *CorrectProcessor) SupportedOptions() []string {
	return nil
}

func (p *CorrectProcessor) Completions(element contract.Element, annotation contract.AnnotationMirror, member contract.ExecutableElement, userText string) iter.Seq[contract.Completion] {
	return func(yield func(contract.Completion) bool) {}
}
