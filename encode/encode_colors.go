package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Part identifies a colorable piece of rendered output.
type Part int

const (
	HeaderPart Part = iota
	TagPart
	AttrNamePart
	AttrValuePart
	ContentPart
	SepPart
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Part]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Part]func(string, ...any) string{},
	}
	colors.Map[HeaderPart] = color.RGB(128, 128, 128).SprintfFunc()
	colors.Map[TagPart] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[AttrNamePart] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[AttrValuePart] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[ContentPart] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[SepPart] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string {
	return v
}

func (c *Colors) Color(part Part, v string) string {
	f := c.Map[part]
	if f == nil {
		f = c.Default
	}
	return f(v)
}
