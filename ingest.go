package markup

import (
	"github.com/markfmt/go-markup/gomap"
	"github.com/markfmt/go-markup/ir"
)

// Ingest maps v into a subtree with m and attaches it under the
// document root, returning the new subtree's root node.
func Ingest(doc *ir.Document, m *gomap.Mapper, v any) (*ir.Node, error) {
	node, err := m.Map(v)
	if err != nil {
		return nil, err
	}
	doc.Root().Attach(node)
	return node, nil
}
