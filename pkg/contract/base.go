package contract

import (
	"iter"
	"slices"
)

// BaseProcessor provides defaults for every Processor method except
// Process. Embed it and declare Process:
//
//	//plugreg:processor
//	type MyProcessor struct {
//		contract.BaseProcessor
//	}
//
//	func (p *MyProcessor) Process(annotations []contract.TypeElement, round contract.RoundEnv) bool {
//		...
//	}
type BaseProcessor struct {
	// Env is the environment passed to Init. Nil before Init.
	Env ProcessingEnv

	// AnnotationTypes is returned by SupportedAnnotationTypes.
	AnnotationTypes []string

	// Options is returned by SupportedOptions.
	Options []string

	// Version is returned by SupportedSourceVersion. Zero means
	// Latest.
	Version SourceVersion
}

// Init records env. Calling it twice panics, as the host must
// initialize a processor exactly once.
func (b *BaseProcessor) Init(env ProcessingEnv) {
	if b.Env != nil {
		panic("contract: processor initialized twice")
	}
	b.Env = env
}

// Initialized reports whether Init has run.
func (b *BaseProcessor) Initialized() bool {
	return b.Env != nil
}

func (b *BaseProcessor) SupportedSourceVersion() SourceVersion {
	if b.Version == 0 {
		return Latest
	}
	return b.Version
}

func (b *BaseProcessor) SupportedAnnotationTypes() []string {
	return slices.Clone(b.AnnotationTypes)
}

func (b *BaseProcessor) SupportedOptions() []string {
	return slices.Clone(b.Options)
}

// Completions yields nothing.
func (b *BaseProcessor) Completions(Element, AnnotationMirror, ExecutableElement, string) iter.Seq[Completion] {
	return func(func(Completion) bool) {}
}
