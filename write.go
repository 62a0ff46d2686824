package markup

import (
	"bytes"
	"fmt"
	"os"

	"github.com/markfmt/go-markup/encode"
	"github.com/markfmt/go-markup/ir"
)

// WriteFile renders doc and writes the text to path. Persistence is
// the one genuinely fatal error domain: a failure here is surfaced
// as-is and the call is not retried.
func WriteFile(doc *ir.Document, path string, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeDocument(doc, buf, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
