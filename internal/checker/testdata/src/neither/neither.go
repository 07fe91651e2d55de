// Package neither holds a marked type unrelated to the contract.
package neither

//plugreg:processor
type NotAProcessor struct {
	Name string
}

func (n NotAProcessor) Process() bool {
	return true
}
