// Package unregistrable holds marked types no registry entry can
// name.
package unregistrable

import (
	"iter"

	"github.com/unbound-force/plugreg/pkg/contract"
)

//plugreg:processor
type GenericDirect[T any] struct {
	cfg T
}

func (GenericDirect[T]) SupportedOptions() []string { return nil }

func (GenericDirect[T]) SupportedAnnotationTypes() []string { return nil }

func (GenericDirect[T]) SupportedSourceVersion() contract.SourceVersion { return contract.Latest }

func (GenericDirect[T]) Init(env contract.ProcessingEnv) {}

func (GenericDirect[T]) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return false
}

func (GenericDirect[T]) Completions(contract.Element, contract.AnnotationMirror, contract.ExecutableElement, string) iter.Seq[contract.Completion] {
	return nil
}

//plugreg:processor
type GenericBase[T any] struct {
	contract.BaseProcessor
	cfg T
}

func (p *GenericBase[T]) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
	return false
}

type Shape interface {
	Process(annotations []contract.TypeElement, round contract.RoundEnv) bool
}

//plugreg:processor
type Derived Shape

//plugreg:processor
type Literal interface {
	contract.Processor
}
