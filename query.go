package markup

import (
	"github.com/markfmt/go-markup/ir"
	"github.com/markfmt/go-markup/visit"
	"github.com/markfmt/go-markup/xpath"
)

// Query evaluates a path expression from the document root and invokes
// v once per matched node, in result order. An expression matching
// nothing yields zero visits, never an error.
func Query(doc *ir.Document, expr string, v visit.Visitor) {
	xpath.Parse(expr).Eval(doc.Root(), v)
}

// QueryNodes evaluates a path expression from the document root and
// collects the matched nodes.
func QueryNodes(doc *ir.Document, expr string) []*ir.Node {
	var res []*ir.Node
	Query(doc, expr, visit.VisitorFunc(func(n *ir.Node) {
		res = append(res, n)
	}))
	return res
}
