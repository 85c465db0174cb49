// Package parse decodes JSON or YAML text into ir.Node documents.
package parse

import (
	"github.com/docpatch-format/go-docpatch/format"
	"github.com/docpatch-format/go-docpatch/ir"
)

type config struct {
	format format.Format
}

type ParseOption func(*config)

func ParseFormat(f format.Format) ParseOption {
	return func(c *config) { c.format = f }
}

// Parse decodes d, by default as JSON.  Object member order is
// preserved in the result.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	switch cfg.format {
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return ir.Parse(d)
	}
}
