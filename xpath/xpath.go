// Package xpath evaluates restricted path expressions over a markup
// tree: a '/'-separated sequence of exact node names, with no
// wildcards, predicates, or positional indices.
package xpath

import (
	"strings"

	"github.com/markfmt/go-markup/debug"
	"github.com/markfmt/go-markup/ir"
	"github.com/markfmt/go-markup/visit"
)

// Path is a parsed path expression.
type Path struct {
	segments []string
}

// Parse splits expr on '/'. Splitting is literal: a leading, trailing
// or doubled delimiter yields an empty segment, which later matches
// only nodes literally named with the empty string.
func Parse(expr string) *Path {
	return &Path{segments: strings.Split(expr, "/")}
}

func (p *Path) String() string {
	return strings.Join(p.segments, "/")
}

// Eval evaluates the path from start and invokes v once per matched
// node, in result order. Matching is stepwise: each segment replaces
// the working set with the concatenation, over the current candidates
// in order, of each candidate's direct children carrying the segment
// name, in their stored order. A segment matching nothing collapses
// the working set permanently, yielding zero visits. Only the matched
// nodes themselves are visited; their subtrees are not walked.
func (p *Path) Eval(start *ir.Node, v visit.Visitor) {
	if debug.XPath() {
		debug.Logf("xpath %q from %s\n", p.String(), start.Path())
	}
	working := []*ir.Node{start}
	for _, seg := range p.segments {
		var next []*ir.Node
		for _, cand := range working {
			for _, c := range cand.Children {
				if c.Name == seg {
					next = append(next, c)
				}
			}
		}
		working = next
		if len(working) == 0 {
			break
		}
	}
	for _, n := range working {
		v.Visit(n)
	}
}
