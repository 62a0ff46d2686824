package ir

import (
	"strconv"
	"strings"
)

// Path returns a diagnostic string locating this node in its tree,
// of the form "root/a/b[2]" where an index appears whenever a node has
// same-named siblings. Intended for error messages and debug logs, not
// for query evaluation.
func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Name
	}
	var b strings.Builder
	b.WriteString(n.Parent.Path())
	b.WriteByte('/')
	b.WriteString(n.Name)
	index, dup := siblingIndex(n)
	if dup {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(index))
		b.WriteByte(']')
	}
	return b.String()
}

// siblingIndex reports n's position among its parent's same-named
// children and whether there is more than one.
func siblingIndex(n *Node) (int, bool) {
	index, count := 0, 0
	for _, c := range n.Parent.Children {
		if c.Name != n.Name {
			continue
		}
		if c == n {
			index = count
		}
		count++
	}
	return index, count > 1
}
