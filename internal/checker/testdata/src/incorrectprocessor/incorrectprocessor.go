// Package incorrectprocessor holds a processor that claims the
// contract by embedding it but declares only Completions.
package incorrectprocessor

import (
	"iter"

	"github.com/unbound-force/plugreg/pkg/contract"
)

//plugreg:processor
type IncorrectProcessor struct {
	contract.Processor
}

func (p IncorrectProcessor) Completions(element contract.Element, annotation contract.AnnotationMirror, member contract.ExecutableElement, userText string) iter.Seq[contract.Completion] {
	return nil
}
