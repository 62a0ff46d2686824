package visit

import "github.com/markfmt/go-markup/ir"

// NodeRemover detaches every node named Entity from its parent,
// taking the node's whole subtree with it. A matching node without a
// parent (the document root) is left in place.
type NodeRemover struct {
	Entity string
}

func (r *NodeRemover) Visit(n *ir.Node) {
	if n.Name != r.Entity {
		return
	}
	if n.Parent == nil {
		return
	}
	n.Parent.Detach(n)
}
