package visit

import (
	"fmt"
	"io"

	"github.com/markfmt/go-markup/encode"
	"github.com/markfmt/go-markup/ir"
)

// TagPrinter writes the single-line tag form of every visited node to
// W, one node per line. It matches unconditionally and mutates
// nothing.
type TagPrinter struct {
	W      io.Writer
	Colors *encode.Colors
}

func (p *TagPrinter) Visit(n *ir.Node) {
	fmt.Fprintln(p.W, encode.Tag(n, p.Colors))
}
