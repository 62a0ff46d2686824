package visit

import "github.com/markfmt/go-markup/ir"

// AttributeRenamer renames attributes on every node named Entity.
// Each matching attribute is removed and re-added under the new name
// with its value preserved, so renamed attributes move to the end of
// the attribute list rather than keeping their position.
type AttributeRenamer struct {
	Entity  string
	OldName string
	NewName string
}

func (a *AttributeRenamer) Visit(n *ir.Node) {
	if n.Name != a.Entity {
		return
	}
	var values []string
	for _, attr := range n.Attrs() {
		if attr.Name == a.OldName {
			values = append(values, attr.Value)
		}
	}
	if len(values) == 0 {
		return
	}
	n.RemoveAttribute(a.OldName)
	for _, v := range values {
		n.AddAttribute(a.NewName, v)
	}
}
