package encode

import (
	"strings"

	"github.com/docpatch-format/go-docpatch/ir"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Field   func(string, ...any) string
	Punct   func(string, ...any) string
	Values  map[ir.Type]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Field:   color.RGB(128, 168, 196).SprintfFunc(),
		Punct:   color.RGB(255, 0, 196).SprintfFunc(),
		Values: map[ir.Type]func(string, ...any) string{
			ir.NullType:   color.RGB(168, 0, 196).SprintfFunc(),
			ir.BoolType:   color.CyanString,
			ir.NumberType: color.RGB(128, 216, 236).SprintfFunc(),
			ir.StringType: color.RGB(8, 196, 16).SprintfFunc(),
		},
	}
	colors.Field = escapePercent(colors.Field)
	colors.Punct = escapePercent(colors.Punct)
	for t, f := range colors.Values {
		colors.Values[t] = escapePercent(f)
	}
	return colors
}

func escapePercent(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string, _ ...any) string { return v }

// value colorizes a scalar token; a nil receiver renders plainly so
// callers need not branch on whether colors are configured.
func (c *Colors) value(t ir.Type, s string) string {
	if c == nil {
		return s
	}
	f := c.Values[t]
	if f == nil {
		f = c.Default
	}
	return f(s)
}

func (c *Colors) field(s string) string {
	if c == nil {
		return s
	}
	return c.Field(s)
}

func (c *Colors) punct(s string) string {
	if c == nil {
		return s
	}
	return c.Punct(s)
}
