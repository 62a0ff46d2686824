package visit

import "github.com/markfmt/go-markup/ir"

// AttributeAdder appends an attribute to every node named Entity.
type AttributeAdder struct {
	Entity string
	Name   string
	Value  string
}

func (a *AttributeAdder) Visit(n *ir.Node) {
	if n.Name != a.Entity {
		return
	}
	n.AddAttribute(a.Name, a.Value)
}
