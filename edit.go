package markup

import (
	"github.com/markfmt/go-markup/ir"
	"github.com/markfmt/go-markup/visit"
)

// Bulk document edits. Each operation dispatches its visitor over the
// whole document and therefore applies to every matching node, not
// just the first.

// AddAttribute appends the attribute (name, value) to every node named
// entity.
func AddAttribute(doc *ir.Document, entity, name, value string) {
	visit.Walk(doc.Root(), &visit.AttributeAdder{Entity: entity, Name: name, Value: value})
}

// RemoveAttribute removes all attributes named name from every node
// named entity.
func RemoveAttribute(doc *ir.Document, entity, name string) {
	visit.Walk(doc.Root(), &visit.AttributeRemover{Entity: entity, Name: name})
}

// RenameAttribute renames attributes from oldName to newName on every
// node named entity. Renamed attributes move to the end of the
// attribute list.
func RenameAttribute(doc *ir.Document, entity, oldName, newName string) {
	visit.Walk(doc.Root(), &visit.AttributeRenamer{Entity: entity, OldName: oldName, NewName: newName})
}

// RenameEntity renames every node named oldName to newName.
func RenameEntity(doc *ir.Document, oldName, newName string) {
	visit.Walk(doc.Root(), &visit.NodeRenamer{OldName: oldName, NewName: newName})
}

// RemoveEntity detaches every node named entity, subtree included.
// The document root is never removed.
func RemoveEntity(doc *ir.Document, entity string) {
	visit.Walk(doc.Root(), &visit.NodeRemover{Entity: entity})
}
