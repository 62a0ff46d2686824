package gomap

import "github.com/markfmt/go-markup/ir"

// Builder decides the structural effect of attaching a mapped field's
// text value to its owning node.
type Builder func(parent *ir.Node, name, text string)

// Standard builder registry names.
const (
	// BuilderAttr adds an attribute (name, text) on the parent.
	BuilderAttr = "attr"
	// BuilderChild creates a named child node whose content is text.
	// It is the default placement for scalar fields.
	BuilderChild = "child"
)

func buildAttr(parent *ir.Node, name, text string) {
	parent.AddAttribute(name, text)
}

func buildChild(parent *ir.Node, name, text string) {
	child := ir.NewNode(name)
	child.SetContent(text)
	parent.Attach(child)
}
