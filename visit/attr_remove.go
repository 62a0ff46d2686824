package visit

import "github.com/markfmt/go-markup/ir"

// AttributeRemover removes all attributes with the given name from
// every node named Entity.
type AttributeRemover struct {
	Entity string
	Name   string
}

func (a *AttributeRemover) Visit(n *ir.Node) {
	if n.Name != a.Entity {
		return
	}
	n.RemoveAttribute(a.Name)
}
