package visit

import "github.com/markfmt/go-markup/ir"

// NodeRenamer renames every node named OldName to NewName.
type NodeRenamer struct {
	OldName string
	NewName string
}

func (r *NodeRenamer) Visit(n *ir.Node) {
	if n.Name != r.OldName {
		return
	}
	n.Rename(r.NewName)
}
