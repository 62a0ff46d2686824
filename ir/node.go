package ir

import "slices"

// Node is the structural unit of a document. Children and Attributes
// are ordered; insertion order drives rendering and query fan-out.
// Parent is a non-owning back-reference maintained only by Attach and
// Detach.
type Node struct {
	Name       string
	Content    string
	Parent     *Node
	Children   []*Node
	Attributes []Attribute
}

func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Attach appends child to n's children and sets child.Parent to n
// unconditionally. A child attached while still listed under a
// previous parent stays in that parent's children slice; callers must
// Detach first to move a node.
func (n *Node) Attach(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Detach removes child from n's children by identity and clears its
// parent reference. No-op when child is not among n's children.
func (n *Node) Detach(child *Node) {
	for i, c := range n.Children {
		if c != child {
			continue
		}
		n.Children = slices.Delete(n.Children, i, i+1)
		child.Parent = nil
		return
	}
}

// SetContent sets the inline text payload. Children are not cleared;
// rendering gives content precedence over children.
func (n *Node) SetContent(content string) {
	n.Content = content
}

// Rename changes the node's name in place. Live references, including
// matchers mid-traversal, observe the new name immediately.
func (n *Node) Rename(name string) {
	n.Name = name
}

// Root walks parent references up to the tree's root.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Clone returns a deep copy of n's subtree with rebuilt parent links.
// The clone's own Parent is nil.
func (n *Node) Clone() *Node {
	res := &Node{
		Name:    n.Name,
		Content: n.Content,
	}
	res.Attributes = slices.Clone(n.Attributes)
	res.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cc := c.Clone()
		cc.Parent = res
		res.Children[i] = cc
	}
	return res
}
