package ir

import "slices"

// Attribute is a mutable name/value pair. Duplicate names are
// permitted at storage level; keyed lookup returns the first match.
type Attribute struct {
	Name  string
	Value string
}

// AddAttribute appends an attribute. No uniqueness check is made.
func (n *Node) AddAttribute(name, value string) {
	n.Attributes = append(n.Attributes, Attribute{Name: name, Value: value})
}

// RemoveAttribute removes every attribute whose name matches.
func (n *Node) RemoveAttribute(name string) {
	n.Attributes = slices.DeleteFunc(n.Attributes, func(a Attribute) bool {
		return a.Name == name
	})
}

// Attribute returns the value of the first attribute with the given
// name, and whether one was found.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attribute list in insertion order.
// Duplicates not reachable via Attribute appear here.
func (n *Node) Attrs() []Attribute {
	return slices.Clone(n.Attributes)
}

func (n *Node) ClearAttributes() {
	n.Attributes = nil
}
