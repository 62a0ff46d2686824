package encode

import (
	"io"
	"strings"

	"github.com/markfmt/go-markup/ir"
)

// Header is the processing instruction emitted ahead of a rendered
// document.
const Header = `<?xml version="1.0" encoding="UTF-8"?>`

type EncState struct {
	depth  int
	indent string
	header bool

	Color func(Part, string) string
}

// Encode renders the subtree rooted at node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.header {
		if err := writeHeader(w, es); err != nil {
			return err
		}
	}
	return encode(node, w, es)
}

// EncodeDocument renders doc, header processing instruction included
// unless disabled via EncodeHeader(false).
func EncodeDocument(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	return Encode(doc.Root(), w, append([]EncodeOption{EncodeHeader(true)}, opts...)...)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	ind := strings.Repeat(es.indent, es.depth)
	if err := writeString(w, ind); err != nil {
		return err
	}
	if node.Content == "" && len(node.Children) == 0 {
		return writeString(w, openTag(node, true, es)+"\n")
	}
	if err := writeString(w, openTag(node, false, es)); err != nil {
		return err
	}
	// Content shadows children: both may be set, only content renders.
	if node.Content != "" {
		content := escapeText(node.Content)
		content = applyColor(es, ContentPart, content)
		if err := writeString(w, content); err != nil {
			return err
		}
		return writeString(w, closeTag(node, es)+"\n")
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	es.depth++
	for _, c := range node.Children {
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, ind+closeTag(node, es)+"\n")
}

// Tag renders the single-line open-tag form of node's name and
// attributes, without descending into children. Used for diagnostics.
func Tag(node *ir.Node, colors *Colors) string {
	es := &EncState{}
	if colors != nil {
		es.Color = colors.Color
	}
	return openTag(node, true, es)
}

func openTag(node *ir.Node, selfClose bool, es *EncState) string {
	var b strings.Builder
	b.WriteString(applyColor(es, SepPart, "<"))
	b.WriteString(applyColor(es, TagPart, node.Name))
	for _, a := range node.Attributes {
		b.WriteByte(' ')
		b.WriteString(applyColor(es, AttrNamePart, a.Name))
		b.WriteString(applyColor(es, SepPart, "="))
		b.WriteString(applyColor(es, AttrValuePart, `"`+escapeAttr(a.Value)+`"`))
	}
	if selfClose {
		b.WriteString(applyColor(es, SepPart, "/>"))
	} else {
		b.WriteString(applyColor(es, SepPart, ">"))
	}
	return b.String()
}

func closeTag(node *ir.Node, es *EncState) string {
	return applyColor(es, SepPart, "</") +
		applyColor(es, TagPart, node.Name) +
		applyColor(es, SepPart, ">")
}

func writeHeader(w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, HeaderPart, Header)+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, part Part, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(part, v)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeAttr(v string) string {
	return attrEscaper.Replace(v)
}

func escapeText(v string) string {
	return textEscaper.Replace(v)
}
