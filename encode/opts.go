package encode

// EncodeOption configures an Encode or EncodeDocument call.
type EncodeOption func(*EncState)

// EncodeIndent sets the per-depth indent string. The default is a
// single tab.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) {
		es.indent = indent
	}
}

// EncodeHeader controls emission of the leading processing
// instruction. EncodeDocument emits it by default; Encode does not.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) {
		es.header = v
	}
}

// EncodeColors installs a color table applied to tags, attributes and
// content as they are written.
func EncodeColors(colors *Colors) EncodeOption {
	return func(es *EncState) {
		if colors == nil {
			es.Color = nil
			return
		}
		es.Color = colors.Color
	}
}
