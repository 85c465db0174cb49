package jsonptr

import (
	"fmt"

	"github.com/docpatch-format/go-docpatch/ir"
)

// Resolve walks the pointer from doc's root and returns the addressed
// node.  The returned node aliases the document, so mutating it
// mutates the document.
func Resolve(doc *ir.Node, p Pointer) (*ir.Node, error) {
	res := doc
	for _, tok := range p {
		switch res.Type {
		case ir.ObjectType:
			next := res.Get(tok)
			if next == nil {
				return nil, fmt.Errorf("%w: no key %q", ErrInvalidPointer, tok)
			}
			res = next
		case ir.ArrayType:
			idx, err := ParseIndex(tok, len(res.Values))
			if err != nil {
				return nil, err
			}
			res = res.Values[idx]
		default:
			return nil, fmt.Errorf("%w: cannot index %s with %q", ErrInvalidPointer, res.Type, tok)
		}
	}
	return res, nil
}
