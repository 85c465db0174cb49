package encode

import "github.com/docpatch-format/go-docpatch/format"

type config struct {
	format format.Format
	indent int
	colors *Colors
}

type EncodeOption func(*config)

func EncodeFormat(f format.Format) EncodeOption {
	return func(c *config) { c.format = f }
}

// EncodeIndent sets the indentation width; zero selects the compact
// wire form.
func EncodeIndent(n int) EncodeOption {
	return func(c *config) { c.indent = n }
}

func EncodeColors(colors *Colors) EncodeOption {
	return func(c *config) { c.colors = colors }
}
