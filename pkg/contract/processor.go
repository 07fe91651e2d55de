// Package contract defines the plugin contract that processors
// registered by plugreg must satisfy. Plugin authors import this
// package; plugreg itself only inspects its shape.
package contract

import "iter"

// Processor is the plugin contract. A host discovers processors
// through the registry file plugreg writes and drives them round by
// round.
type Processor interface {
	// Process handles the marked elements of one round. Returning
	// true claims the annotations so later processors skip them.
	Process(annotations []TypeElement, round RoundEnv) bool

	// Init is called once, before the first round.
	Init(env ProcessingEnv)

	// SupportedSourceVersion reports the newest source version the
	// processor understands.
	SupportedSourceVersion() SourceVersion

	// SupportedAnnotationTypes lists the qualified names of the
	// markers the processor handles. "*" matches everything.
	SupportedAnnotationTypes() []string

	// SupportedOptions lists the option keys the processor reads
	// from ProcessingEnv.Options.
	SupportedOptions() []string

	// Completions suggests values for a marker member being edited.
	Completions(element Element, annotation AnnotationMirror, member ExecutableElement, userText string) iter.Seq[Completion]
}
