// Package mergepatch applies RFC 7396 merge patches: recursive
// partial-document overlays where a null object member deletes the
// key it names.
package mergepatch

import (
	"github.com/docpatch-format/go-docpatch/ir"
)

// Merge applies overlay to doc in place.  It never fails.
//
// A non-object overlay replaces the document wholesale; at the top
// level a null overlay is the RFC 7396 delete-whole-document case.  A
// null nested inside an object overlay means "delete this key" and is
// handled by the object branch instead.
func Merge(doc, overlay *ir.Node) {
	if overlay.Type != ir.ObjectType {
		*doc = *overlay.Clone()
		return
	}
	if doc.Type != ir.ObjectType {
		*doc = ir.Node{Type: ir.ObjectType}
	}
	for i, key := range overlay.Fields {
		val := overlay.Values[i]
		if val.Type == ir.NullType {
			doc.Delete(key)
			continue
		}
		target := doc.Get(key)
		if target == nil {
			target = ir.Null()
			doc.Set(key, target)
		}
		Merge(target, val)
	}
}
