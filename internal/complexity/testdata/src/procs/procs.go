// Package procs holds Process methods of known complexity.
package procs

type Simple struct{}

func (s *Simple) Process(names []string, over bool) bool {
	return over
}

type Branchy struct{}

func (b Branchy) Process(names []string, over bool) bool {
	if over {
		return false
	}
	for _, n := range names {
		if n == "" || n == "-" {
			continue
		}
	}
	return true
}

type Generic[T any] struct{ v T }

func (g *Generic[T]) Process(names []string, over bool) bool {
	if over {
		return true
	}
	return false
}

type NoProcess struct{}

func (NoProcess) Run() {}

// Process is a plain function and belongs to no type.
func Process() {}
