package gomap

import (
	"fmt"
	"strings"
)

// fieldTag holds the markers a struct field declares in its `markup`
// tag.
type fieldTag struct {
	// Name is the resolved node/attribute name override, empty when the
	// field's own identifier applies.
	Name string

	// Builder names the attach strategy in the builder registry. The
	// "attr" flag is shorthand for Builder="attr".
	Builder string

	// Transform names a transformer in the transformer registry.
	Transform string

	// Omit marks the field as excluded regardless of value.
	Omit bool
}

// parseFieldTag interprets a `markup:"..."` struct tag.
func parseFieldTag(tag string) (*fieldTag, error) {
	parsed, err := ParseStructTag(tag)
	if err != nil {
		return nil, err
	}
	ft := &fieldTag{}
	ft.Name = parsed["name"]
	ft.Builder = parsed["builder"]
	ft.Transform = parsed["transform"]
	if _, ok := parsed["attr"]; ok {
		ft.Builder = BuilderAttr
	}
	if _, ok := parsed["omit"]; ok {
		ft.Omit = true
	} else if v, ok := parsed["-"]; ok && v == "" {
		ft.Omit = true
	}
	return ft, nil
}

// ParseStructTag parses a struct tag string and returns a map of
// key-value pairs. Handles comma-separated values:
// `markup:"key1=value1,key2=value2,flag"`. Supports quoted values
// with spaces: `markup:"name='value with spaces'"`.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)

	if tag == "" {
		return result, nil
	}

	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for i := 0; i < len(tag); i++ {
		char := tag[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case char == ',' && !inSingleQuote && !inDoubleQuote:
			part := strings.TrimSpace(current.String())
			if part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		case char == ' ' && !inSingleQuote && !inDoubleQuote:
			part := strings.TrimSpace(current.String())
			if part != "" {
				parts = append(parts, part)
				current.Reset()
			}
		default:
			current.WriteByte(char)
		}
	}

	part := strings.TrimSpace(current.String())
	if part != "" {
		parts = append(parts, part)
	}

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if idx := strings.Index(part, "="); idx >= 0 {
			key := strings.TrimSpace(part[:idx])
			value := strings.TrimSpace(part[idx+1:])
			if key == "" {
				return nil, fmt.Errorf("invalid tag: empty key in %q", part)
			}
			result[key] = unquoteValue(value)
		} else {
			// boolean flag, no value
			result[part] = ""
		}
	}

	return result, nil
}

// unquoteValue removes surrounding single or double quotes from a
// value.
func unquoteValue(value string) string {
	if len(value) < 2 {
		return value
	}
	if value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}
	if value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}
