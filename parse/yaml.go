package parse

import (
	"fmt"
	"math"

	"github.com/docpatch-format/go-docpatch/ir"

	"github.com/goccy/go-yaml"
)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t <= math.MaxInt64 {
			return ir.FromInt(int64(t)), nil
		}
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, len(t))}
		for i, elt := range t {
			n, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType}
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string object key %v", ir.ErrParse, item.Key)
			}
			n, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml value %T", ir.ErrParse, v)
	}
}
