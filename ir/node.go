package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a document tree.  A document owns its children
// recursively; no node is shared between two documents.
//
// For ObjectType nodes, Fields holds the keys in insertion order and
// Values the corresponding values; keys are unique.  For ArrayType
// nodes only Values is used.  Scalar nodes use the field matching
// their type.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
	Number  string
}

func (node *Node) Clone() *Node {
	res := &Node{}
	return node.CloneTo(res)
}

func (node *Node) CloneTo(dst *Node) *Node {
	dst.Type = node.Type
	dst.String = node.String
	dst.Bool = node.Bool
	dst.Number = node.Number
	if node.Int64 != nil {
		i := *node.Int64
		dst.Int64 = &i
	}
	if node.Float64 != nil {
		f := *node.Float64
		dst.Float64 = &f
	}
	if node.Fields != nil {
		dst.Fields = slices.Clone(node.Fields)
	}
	if node.Values != nil {
		dst.Values = make([]*Node, len(node.Values))
		for i, v := range node.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// FromMap builds an object node with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	res.Fields = make([]string, len(keys))
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		res.Fields[i] = key
		res.Values[i] = m[key]
	}
	return res
}

type Member struct {
	Key string
	Val *Node
}

// FromMembers builds an object node preserving the given key order.
func FromMembers(members ...Member) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, len(members))
	res.Values = make([]*Node, len(members))
	for i := range members {
		res.Fields[i] = members[i].Key
		res.Values[i] = members[i].Val
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, key := range node.Fields {
		res[key] = node.Values[i]
	}
	return res
}

// Get returns the value at an object key, or nil if node is not an
// object or the key is absent.
func (node *Node) Get(key string) *Node {
	i := node.index(key)
	if i == -1 {
		return nil
	}
	return node.Values[i]
}

// Set inserts or overwrites an object key, appending new keys at the
// end to keep insertion order.  It returns the previous value at the
// key, if any.
func (node *Node) Set(key string, val *Node) *Node {
	i := node.index(key)
	if i == -1 {
		node.Fields = append(node.Fields, key)
		node.Values = append(node.Values, val)
		return nil
	}
	prev := node.Values[i]
	node.Values[i] = val
	return prev
}

// Delete removes an object key, returning the removed value or nil if
// the key was absent.
func (node *Node) Delete(key string) *Node {
	i := node.index(key)
	if i == -1 {
		return nil
	}
	prev := node.Values[i]
	node.Fields = slices.Delete(node.Fields, i, i+1)
	node.Values = slices.Delete(node.Values, i, i+1)
	return prev
}

func (node *Node) index(key string) int {
	if node.Type != ObjectType {
		return -1
	}
	for i, f := range node.Fields {
		if f == key {
			return i
		}
	}
	return -1
}

// NumberString renders a number node the way it is serialized.
func (node *Node) NumberString() string {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Number != "":
		return node.Number
	case node.Float64 != nil:
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	default:
		return "0"
	}
}

func (node *Node) Visit(f func(node *Node, isPost bool) (bool, error)) error {
	dive, err := f(node, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range node.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(node, true); err != nil {
		return err
	}
	return nil
}
