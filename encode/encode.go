// Package encode renders ir.Node documents as JSON or YAML text,
// optionally colorized for terminals.
package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/docpatch-format/go-docpatch/format"
	"github.com/docpatch-format/go-docpatch/ir"

	"github.com/goccy/go-yaml"
)

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	cfg := &config{indent: 2}
	for _, opt := range opts {
		opt(cfg)
	}
	switch cfg.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(toYAML(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		enc := &jsonEncoder{buf: bytes.NewBuffer(nil), cfg: cfg}
		if err := enc.encode(node, 0); err != nil {
			return err
		}
		enc.buf.WriteByte('\n')
		_, err := w.Write(enc.buf.Bytes())
		return err
	}
	return fmt.Errorf("unrecognized format %d", cfg.format)
}

type jsonEncoder struct {
	buf *bytes.Buffer
	cfg *config
}

func (e *jsonEncoder) encode(node *ir.Node, depth int) error {
	colors := e.cfg.colors
	switch node.Type {
	case ir.NullType:
		e.buf.WriteString(colors.value(node.Type, "null"))
	case ir.BoolType:
		e.buf.WriteString(colors.value(node.Type, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		e.buf.WriteString(colors.value(node.Type, node.NumberString()))
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		e.buf.WriteString(colors.value(node.Type, string(d)))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			e.buf.WriteString(colors.punct("[]"))
			return nil
		}
		e.buf.WriteString(colors.punct("["))
		for i, v := range node.Values {
			if i > 0 {
				e.buf.WriteString(colors.punct(","))
			}
			e.sep(depth + 1)
			if err := e.encode(v, depth+1); err != nil {
				return err
			}
		}
		e.sep(depth)
		e.buf.WriteString(colors.punct("]"))
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			e.buf.WriteString(colors.punct("{}"))
			return nil
		}
		e.buf.WriteString(colors.punct("{"))
		for i, key := range node.Fields {
			if i > 0 {
				e.buf.WriteString(colors.punct(","))
			}
			e.sep(depth + 1)
			d, err := json.Marshal(key)
			if err != nil {
				return err
			}
			e.buf.WriteString(colors.field(string(d)))
			e.buf.WriteString(colors.punct(":"))
			if e.cfg.indent > 0 {
				e.buf.WriteByte(' ')
			}
			if err := e.encode(node.Values[i], depth+1); err != nil {
				return err
			}
		}
		e.sep(depth)
		e.buf.WriteString(colors.punct("}"))
	default:
		return fmt.Errorf("unrecognized node type %d", node.Type)
	}
	return nil
}

// sep writes the separator preceding an element at the given depth: a
// newline plus indentation, or nothing in compact mode.
func (e *jsonEncoder) sep(depth int) {
	if e.cfg.indent == 0 {
		return
	}
	e.buf.WriteByte('\n')
	e.buf.WriteString(strings.Repeat(" ", e.cfg.indent*depth))
}

func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, key := range node.Fields {
			res[i] = yaml.MapItem{Key: key, Value: toYAML(node.Values[i])}
		}
		return res
	default:
		panic("type")
	}
}
