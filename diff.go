package markup

import (
	"bytes"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/markfmt/go-markup/encode"
	"github.com/markfmt/go-markup/ir"
)

// Diff renders both documents and returns a line-oriented pretty diff
// of the two text forms. An empty result means the rendered documents
// are identical.
func Diff(from, to *ir.Document, opts ...encode.EncodeOption) (string, error) {
	fromText, err := renderString(from, opts...)
	if err != nil {
		return "", err
	}
	toText, err := renderString(to, opts...)
	if err != nil {
		return "", err
	}
	if fromText == toText {
		return "", nil
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(fromText, toText)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	return diffCfg.DiffPrettyText(diffs), nil
}

func renderString(doc *ir.Document, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeDocument(doc, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
