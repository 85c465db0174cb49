package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// MarshalJSON renders the node as the JSON document it models, with
// object members in insertion order.
func (node *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := node.appendJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (node *Node) appendJSON(buf *bytes.Buffer) error {
	switch node.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case NumberType:
		buf.WriteString(node.NumberString())
	case StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, key := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := node.Values[i].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unrecognized node type %d", node.Type)
	}
	return nil
}

// UnmarshalJSON decodes a JSON document, preserving object member
// order.  encoding/json's map decoding would lose it, so the token
// stream is walked directly.
func (node *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeValue(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	*node = *res
	return nil
}

// Parse decodes a JSON document into a node tree.
func Parse(d []byte) (*Node, error) {
	node := &Node{}
	if err := node.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return node, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: unexpected end of document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		return numberNode(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ArrayType, Values: []*Node{}}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return res, nil
		}
		v, err := decodeToken(dec, tok)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
	}
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return res, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string: %v", ErrParse, tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		// duplicate keys collapse to the last occurrence
		res.Set(key, v)
	}
}

func numberNode(n json.Number) *Node {
	if i, err := n.Int64(); err == nil {
		return FromInt(i)
	}
	// a numeral beyond float64 range parses to ±Inf, which still
	// orders correctly against in-range numbers; the raw text is kept
	// for lossless re-serialization
	f, _ := n.Float64()
	res := FromFloat(f)
	res.Number = n.String()
	return res
}
