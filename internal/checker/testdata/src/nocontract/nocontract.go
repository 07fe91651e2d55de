// Package nocontract never imports the contract package.
package nocontract

//plugreg:processor
type Lonely struct{}

func (Lonely) Process(annotations []string) bool {
	return false
}
