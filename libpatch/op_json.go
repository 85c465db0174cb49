package libpatch

import (
	"encoding/json"
	"fmt"

	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/ir/jsonptr"
)

// opWire is the RFC 6902 wire form of a single operation.
type opWire struct {
	Op    string          `json:"op"`
	From  *string         `json:"from,omitempty"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

func (op Operation) MarshalJSON() ([]byte, error) {
	w := opWire{Op: op.Kind.String(), Path: op.Path.String()}
	switch op.Kind {
	case OpMove, OpCopy:
		from := op.From.String()
		w.From = &from
	case OpAdd, OpReplace, OpTest:
		v := op.Value
		if v == nil {
			v = ir.Null()
		}
		d, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		w.Value = d
	}
	return json.Marshal(w)
}

func (op *Operation) UnmarshalJSON(d []byte) error {
	var w struct {
		Op    *string         `json:"op"`
		From  *string         `json:"from"`
		Path  *string         `json:"path"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(d, &w); err != nil {
		return err
	}
	if w.Op == nil {
		return fmt.Errorf("operation without op")
	}
	var kind Kind
	if err := kind.UnmarshalText([]byte(*w.Op)); err != nil {
		return err
	}
	if w.Path == nil {
		return fmt.Errorf("%s op without path", kind)
	}
	path, err := jsonptr.Parse(*w.Path)
	if err != nil {
		return err
	}
	op.Kind = kind
	op.Path = path
	op.From = nil
	op.Value = nil
	switch kind {
	case OpMove, OpCopy:
		if w.From == nil {
			return fmt.Errorf("%s op without from", kind)
		}
		from, err := jsonptr.Parse(*w.From)
		if err != nil {
			return err
		}
		op.From = from
	case OpAdd, OpReplace, OpTest:
		if w.Value == nil {
			return fmt.Errorf("%s op without value", kind)
		}
		v, err := ir.Parse(w.Value)
		if err != nil {
			return err
		}
		op.Value = v
	}
	return nil
}

// DecodePatch decodes a JSON array of operation objects.
func DecodePatch(d []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(d, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (op Operation) String() string {
	d, err := json.Marshal(op)
	if err != nil {
		return "<invalid op>"
	}
	return string(d)
}

func (p Patch) String() string {
	d, err := json.Marshal(p)
	if err != nil {
		return "<invalid patch>"
	}
	return string(d)
}
