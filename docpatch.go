// Package docpatch provides diffing and patching of JSON-like tree
// documents.
//
// Documents are [ir.Node] trees.  Patches come in two dialects:
//
//   - RFC 6902 JSON Patch, an ordered list of operations addressed by
//     RFC 6901 JSON Pointers ([libpatch]).
//   - RFC 7396 JSON Merge Patch, a recursive partial-document overlay
//     ([mergepatch]).
//
// [Diff] computes an RFC 6902 patch transforming one document into
// another.
package docpatch

import (
	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/libdiff"
	"github.com/docpatch-format/go-docpatch/libpatch"
	"github.com/docpatch-format/go-docpatch/mergepatch"
)

// Apply applies patch to doc in place.  On error doc is restored to
// its state before the call and the returned error is a
// [libpatch.Error] naming the failed operation.
func Apply(doc *ir.Node, patch libpatch.Patch) error {
	return libpatch.Apply(doc, patch)
}

// ApplyUnsafe is like [Apply] but on error leaves doc with all
// operations preceding the failed one applied.
func ApplyUnsafe(doc *ir.Node, patch libpatch.Patch) error {
	return libpatch.ApplyUnsafe(doc, patch)
}

// Diff computes a patch which transforms left into right when
// applied.  Applying the result never fails.
func Diff(left, right *ir.Node, opts ...libdiff.Option) libpatch.Patch {
	return libdiff.Diff(left, right, opts...)
}

// Merge applies the RFC 7396 merge patch overlay to doc in place.
func Merge(doc, overlay *ir.Node) {
	mergepatch.Merge(doc, overlay)
}

// DecodePatch decodes the JSON serialization of an RFC 6902 patch.
func DecodePatch(d []byte) (libpatch.Patch, error) {
	return libpatch.DecodePatch(d)
}
