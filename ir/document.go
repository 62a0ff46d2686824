package ir

// Document owns exactly one root node for its entire lifetime. The
// root has no parent and is never reassigned; removal requests against
// it are no-ops by contract.
type Document struct {
	root *Node
}

func NewDocument(rootName string) *Document {
	return &Document{root: NewNode(rootName)}
}

func (d *Document) Root() *Node {
	return d.root
}
