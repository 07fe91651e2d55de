package contract

import "fmt"

// SourceVersion identifies a language release a processor supports.
type SourceVersion int

// Known source versions.
const (
	Go1_21 SourceVersion = iota + 21
	Go1_22
	Go1_23
	Go1_24

	// Latest is the newest version known to this contract.
	Latest = Go1_24
)

// String renders the version as "go1.N".
func (v SourceVersion) String() string {
	return fmt.Sprintf("go1.%d", int(v))
}

// ElementKind classifies an Element.
type ElementKind string

// Element kinds.
const (
	KindPackage ElementKind = "package"
	KindType    ElementKind = "type"
	KindMethod  ElementKind = "method"
	KindField   ElementKind = "field"
)

// Element is a program element exposed to processors.
type Element interface {
	Kind() ElementKind
	SimpleName() string
	Enclosing() Element
}

// TypeElement is a type declaration.
type TypeElement interface {
	Element
	QualifiedName() string
}

// ExecutableElement is a method or function.
type ExecutableElement interface {
	Element
	Params() []Element
}

// AnnotationMirror is a marker instance as attached to an element.
type AnnotationMirror interface {
	MarkerType() TypeElement
	Values() map[string]string
}

// Completion is one suggestion returned by Processor.Completions.
type Completion struct {
	Value   string
	Message string
}

// RoundEnv is the per-round view a host gives processors.
type RoundEnv interface {
	// ProcessingOver reports whether this is the terminal round.
	ProcessingOver() bool

	// ErrorRaised reports whether an earlier round raised an error.
	ErrorRaised() bool

	// ElementsMarkedWith returns the elements of this round carrying
	// the given marker.
	ElementsMarkedWith(marker TypeElement) []Element
}

// Messager reports diagnostics back to the host.
type Messager interface {
	Errorf(at Element, format string, args ...any)
	Warnf(at Element, format string, args ...any)
}

// Filer creates resources under the host's output root.
type Filer interface {
	CreateResource(relPath string) (ResourceWriter, error)
}

// ResourceWriter is an open resource.
type ResourceWriter interface {
	Write(p []byte) (int, error)
	Close() error
}

// ProcessingEnv is handed to Processor.Init.
type ProcessingEnv interface {
	Messager() Messager
	Filer() Filer
	Options() map[string]string
	SourceVersion() SourceVersion
}
