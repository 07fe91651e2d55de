// Package missingone holds one processor per contract method, each
// declaring every method but that one.
package missingone

import (
	"iter"

	"github.com/unbound-force/plugreg/pkg/contract"
)

//plugreg:processor
type IncorrectProcessorSupportedOptions struct {
	contract.Processor
}

func (p *IncorrectProcessorSupportedOptions) SupportedAnnotationTypes() []string { return nil }

func (p *IncorrectProcessorSupportedOptions) SupportedSourceVersion() contract.SourceVersion { return contract.Latest }

func (p *IncorrectProcessorSupportedOptions) Init(env contract.ProcessingEnv) {}

func (p *IncorrectProcessorSupportedOptions) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool { return false }

func (p *IncorrectProcessorSupportedOptions) Completions(element contract.Element, annotation contract.AnnotationMirror, member contract.ExecutableElement, userText string) iter.Seq[contract.Completion] {
	return nil
}

//plugreg:processor
type IncorrectProcessorSupportedAnnotationTypes struct {
	contract.Processor
}

func (p *IncorrectProcessorSupportedAnnotationTypes) SupportedOptions() []string { return nil }

func (p *IncorrectProcessorSupportedAnnotationTypes) SupportedSourceVersion() contract.SourceVersion { return contract.Latest }

func (p *IncorrectProcessorSupportedAnnotationTypes) Init(env contract.ProcessingEnv) {}

func (p *IncorrectProcessorSupportedAnnotationTypes) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool { return false }

func (p *IncorrectProcessorSupportedAnnotationTypes) Completions(element contract.Element, annotation contract.AnnotationMirror, member contract.ExecutableElement, userText string) iter.Seq[contract.Completion] {
	return nil
}

//plugreg:processor
type IncorrectProcessorSupportedSourceVersion struct {
	contract.Processor
}

func (p *IncorrectProcessorSupportedSourceVersion) SupportedOptions() []string { return nil }

func (p *IncorrectProcessorSupportedSourceVersion) SupportedAnnotationTypes() []string { return nil }

func (p *IncorrectProcessorSupportedSourceVersion) Init(env contract.ProcessingEnv) {}

func (p *IncorrectProcessorSupportedSourceVersion) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool { return false }

func (p *IncorrectProcessorSupportedSourceVersion) Completions(element contract.Element, annotation contract.AnnotationMirror, member contract.ExecutableElement, userText string) iter.Seq[contract.Completion] {
	return nil
}

//plugreg:processor
type IncorrectProcessorInit struct {
	contract.Processor
}

func (p *IncorrectProcessorInit) SupportedOptions() []string { return nil }

func (p *IncorrectProcessorInit) SupportedAnnotationTypes() []string { return nil }

func (p *IncorrectProcessorInit) SupportedSourceVersion() contract.SourceVersion { return contract.Latest }

func (p *IncorrectProcessorInit) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool { return false }

func (p *IncorrectProcessorInit) Completions(element contract.Element, annotation contract.AnnotationMirror, member contract.ExecutableElement, userText string) iter.Seq[contract.Completion] {
	return nil
}

//plugreg:processor
type IncorrectProcessorProcess struct {
	contract.Processor
}

func (p *IncorrectProcessorProcess) SupportedOptions() []string { return nil }

func (p *IncorrectProcessorProcess) SupportedAnnotationTypes() []string { return nil }

func (p *IncorrectProcessorProcess) SupportedSourceVersion() contract.SourceVersion { return contract.Latest }

func (p *IncorrectProcessorProcess) Init(env contract.ProcessingEnv) {}

func (p *IncorrectProcessorProcess) Completions(element contract.Element, annotation contract.AnnotationMirror, member contract.ExecutableElement, userText string) iter.Seq[contract.Completion] {
	return nil
}

//plugreg:processor
type IncorrectProcessorCompletions struct {
	contract.Processor
}

func (p *IncorrectProcessorCompletions) SupportedOptions() []string { return nil }

func (p *IncorrectProcessorCompletions) SupportedAnnotationTypes() []string { return nil }

func (p *IncorrectProcessorCompletions) SupportedSourceVersion() contract.SourceVersion { return contract.Latest }

func (p *IncorrectProcessorCompletions) Init(env contract.ProcessingEnv) {}

func (p *IncorrectProcessorCompletions) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool { return false }
