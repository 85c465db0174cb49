// Package ir contains the document value model shared by the patch,
// diff and merge engines.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	d, err := json.Marshal(node)
//
// # Related Packages
//
//   - github.com/docpatch-format/go-docpatch/ir/jsonptr - pointer addressing
//   - github.com/docpatch-format/go-docpatch/libpatch - patch application
//   - github.com/docpatch-format/go-docpatch/libdiff - patch computation
package ir
