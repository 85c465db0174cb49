// Package gomap converts between Go values and ir.Node documents,
// bridging through the json serialization so that struct tags apply.
package gomap

import (
	"encoding/json"

	"github.com/docpatch-format/go-docpatch/ir"
)

// FromGo builds a document from any json-marshalable Go value.
func FromGo(v any) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return ir.Parse(d)
}

// ToGo decodes a document into p, which follows the rules of
// json.Unmarshal.
func ToGo(node *ir.Node, p any) error {
	d, err := json.Marshal(node)
	if err != nil {
		return err
	}
	return json.Unmarshal(d, p)
}
