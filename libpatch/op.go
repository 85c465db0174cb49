// Package libpatch applies ordered sequences of pointer-addressed
// edit operations (RFC 6902 patches) to ir.Node documents.
package libpatch

import (
	"fmt"

	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/ir/jsonptr"
)

// Kind is one of the six operation kinds.
type Kind int

const (
	OpAdd Kind = iota
	OpRemove
	OpReplace
	OpMove
	OpCopy
	OpTest
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		OpAdd:     "add",
		OpRemove:  "remove",
		OpReplace: "replace",
		OpMove:    "move",
		OpCopy:    "copy",
		OpTest:    "test",
	}[k]
	if ok {
		return s
	}
	return "<unknown op>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"add":     OpAdd,
		"remove":  OpRemove,
		"replace": OpReplace,
		"move":    OpMove,
		"copy":    OpCopy,
		"test":    OpTest,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized op %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest}
}

// Operation is a single patch operation.  Path is always set; From is
// set for move and copy; Value for add, replace and test.
type Operation struct {
	Kind  Kind
	Path  jsonptr.Pointer
	From  jsonptr.Pointer
	Value *ir.Node
}

// Patch is an ordered operation sequence.  Order is semantically
// significant: each operation sees the result of the previous one.
type Patch []Operation

func Add(path jsonptr.Pointer, value *ir.Node) Operation {
	return Operation{Kind: OpAdd, Path: path, Value: value}
}

func Remove(path jsonptr.Pointer) Operation {
	return Operation{Kind: OpRemove, Path: path}
}

func Replace(path jsonptr.Pointer, value *ir.Node) Operation {
	return Operation{Kind: OpReplace, Path: path, Value: value}
}

func Move(from, path jsonptr.Pointer) Operation {
	return Operation{Kind: OpMove, From: from, Path: path}
}

func Copy(from, path jsonptr.Pointer) Operation {
	return Operation{Kind: OpCopy, From: from, Path: path}
}

func Test(path jsonptr.Pointer, value *ir.Node) Operation {
	return Operation{Kind: OpTest, Path: path, Value: value}
}
