// Package visit implements the pre-order traversal protocol used for
// whole-document bulk edits, together with the standard mutation and
// inspection visitors.
package visit

import (
	"slices"

	"github.com/markfmt/go-markup/debug"
	"github.com/markfmt/go-markup/ir"
)

// Visitor is invoked once per visited node, for side effect. A visitor
// signals "no match" by doing nothing.
type Visitor interface {
	Visit(n *ir.Node)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(n *ir.Node)

func (f VisitorFunc) Visit(n *ir.Node) {
	f(n)
}

// Walk traverses the subtree rooted at n pre-order, depth-first, left
// to right. The children of each node are snapshotted before
// descending, so a visitor that detaches its own matched node from its
// parent does not corrupt the parent's in-progress iteration. This is
// the only traversal-safety guarantee; it does not protect against
// externally concurrent mutation.
func Walk(n *ir.Node, v Visitor) {
	if debug.Visit() {
		debug.Logf("visit %s\n", n.Path())
	}
	v.Visit(n)
	children := slices.Clone(n.Children)
	for _, c := range children {
		Walk(c, v)
	}
}
