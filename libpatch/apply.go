package libpatch

import (
	"fmt"
	"slices"

	"github.com/docpatch-format/go-docpatch/debug"
	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/ir/jsonptr"
)

// Apply applies the patch to doc in order, atomically: either every
// operation succeeds, or the first failing operation's error is
// returned and doc is left deep-equal to its state before the call.
// Inverse operations are recorded on an undo log during forward
// application and replayed in reverse on failure.
func Apply(doc *ir.Node, patch Patch) error {
	undoLog := make([]undoEntry, 0, len(patch))
	for i := range patch {
		op := &patch[i]
		if debug.Patch() {
			debug.LogAny(op)
		}
		entries, err := applyOp(doc, op)
		if err != nil {
			rollback(doc, undoLog)
			return &Error{Index: i, Path: op.Path.String(), Err: err}
		}
		undoLog = append(undoLog, entries...)
	}
	return nil
}

// ApplyUnsafe applies the patch without undo bookkeeping.  On failure,
// operations applied before the failing one remain applied.
func ApplyUnsafe(doc *ir.Node, patch Patch) error {
	for i := range patch {
		op := &patch[i]
		if _, err := applyOp(doc, op); err != nil {
			return &Error{Index: i, Path: op.Path.String(), Err: err}
		}
	}
	return nil
}

func applyOp(doc *ir.Node, op *Operation) ([]undoEntry, error) {
	switch op.Kind {
	case OpAdd:
		if op.Value == nil {
			return nil, fmt.Errorf("%s op without value", op.Kind)
		}
		prev, err := add(doc, op.Path, op.Value.Clone())
		if err != nil {
			return nil, err
		}
		return addUndo(op.Path, prev), nil

	case OpRemove:
		prev, err := remove(doc, op.Path, false)
		if err != nil {
			return nil, err
		}
		return []undoEntry{{kind: undoAdd, path: op.Path, value: prev}}, nil

	case OpReplace:
		if op.Value == nil {
			return nil, fmt.Errorf("%s op without value", op.Kind)
		}
		prev, err := replace(doc, op.Path, op.Value.Clone())
		if err != nil {
			return nil, err
		}
		return []undoEntry{{kind: undoReplace, path: op.Path, value: prev}}, nil

	case OpMove:
		prev, err := mov(doc, op.From, op.Path)
		if err != nil {
			return nil, err
		}
		return []undoEntry{{kind: undoMove, path: op.Path, from: op.From, value: prev}}, nil

	case OpCopy:
		src, err := jsonptr.Resolve(doc, op.From)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFromPointer, err)
		}
		prev, err := add(doc, op.Path, src.Clone())
		if err != nil {
			return nil, err
		}
		return addUndo(op.Path, prev), nil

	case OpTest:
		if op.Value == nil {
			return nil, fmt.Errorf("%s op without value", op.Kind)
		}
		return nil, testValue(doc, op.Path, op.Value)
	}
	return nil, fmt.Errorf("unrecognized op kind %d", op.Kind)
}

func addUndo(path jsonptr.Pointer, prev *ir.Node) []undoEntry {
	if prev != nil {
		return []undoEntry{{kind: undoAdd, path: path, value: prev}}
	}
	return []undoEntry{{kind: undoRemove, path: path}}
}

// add inserts value at path, taking ownership of value.  It returns
// the node previously at path when the insertion overwrote one: at
// the root or at an existing object key.
func add(doc *ir.Node, path jsonptr.Pointer, value *ir.Node) (*ir.Node, error) {
	if path.IsRoot() {
		prev := &ir.Node{}
		*prev = *doc
		*doc = *value
		return prev, nil
	}
	parentPtr, last, err := path.Split()
	if err != nil {
		return nil, err
	}
	parent, err := jsonptr.Resolve(doc, parentPtr)
	if err != nil {
		return nil, err
	}
	switch parent.Type {
	case ir.ObjectType:
		return parent.Set(last, value), nil
	case ir.ArrayType:
		if last == jsonptr.Append {
			parent.Values = append(parent.Values, value)
			return nil, nil
		}
		idx, err := jsonptr.ParseIndex(last, len(parent.Values)+1)
		if err != nil {
			return nil, err
		}
		parent.Values = slices.Insert(parent.Values, idx, value)
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: cannot add under %s", jsonptr.ErrInvalidPointer, parent.Type)
	}
}

// remove deletes the node at path and returns it.  The append marker
// is accepted as "remove last" only when allowLast is set; that form
// exists for undo of appends, never for user-supplied removes.
func remove(doc *ir.Node, path jsonptr.Pointer, allowLast bool) (*ir.Node, error) {
	parentPtr, last, err := path.Split()
	if err != nil {
		return nil, err
	}
	parent, err := jsonptr.Resolve(doc, parentPtr)
	if err != nil {
		return nil, err
	}
	switch parent.Type {
	case ir.ObjectType:
		prev := parent.Delete(last)
		if prev == nil {
			return nil, fmt.Errorf("%w: no key %q", jsonptr.ErrInvalidPointer, last)
		}
		return prev, nil
	case ir.ArrayType:
		n := len(parent.Values)
		if allowLast && last == jsonptr.Append {
			if n == 0 {
				return nil, fmt.Errorf("%w: remove last of empty array", jsonptr.ErrInvalidPointer)
			}
			prev := parent.Values[n-1]
			parent.Values = parent.Values[:n-1]
			return prev, nil
		}
		idx, err := jsonptr.ParseIndex(last, n)
		if err != nil {
			return nil, err
		}
		prev := parent.Values[idx]
		parent.Values = slices.Delete(parent.Values, idx, idx+1)
		return prev, nil
	default:
		return nil, fmt.Errorf("%w: cannot remove under %s", jsonptr.ErrInvalidPointer, parent.Type)
	}
}

// replace overwrites the node at path, taking ownership of value, and
// returns the previous content.  Unlike add it resolves the full path
// directly, so the target must exist; the root path replaces the whole
// document.
func replace(doc *ir.Node, path jsonptr.Pointer, value *ir.Node) (*ir.Node, error) {
	target, err := jsonptr.Resolve(doc, path)
	if err != nil {
		return nil, err
	}
	prev := &ir.Node{}
	*prev = *target
	*target = *value
	return prev, nil
}

// mov removes the value at from and adds it at path.  A target inside
// the moved subtree is rejected before anything is mutated.  When the
// add fails, the removed value is put back at from so the operation as
// a whole leaves the document untouched.
func mov(doc *ir.Node, from, path jsonptr.Pointer) (*ir.Node, error) {
	if path.HasPrefix(from) && len(path) > len(from) {
		return nil, fmt.Errorf("%w: %q is inside %q", ErrMoveInsideItself, path.String(), from.String())
	}
	v, err := remove(doc, from, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFromPointer, err)
	}
	prev, err := add(doc, path, v)
	if err != nil {
		// the remove just succeeded at from, so re-inserting there
		// cannot fail
		if _, rerr := add(doc, from, v); rerr != nil {
			panic(fmt.Sprintf("libpatch: move restore failed: %v", rerr))
		}
		return nil, err
	}
	return prev, nil
}

func testValue(doc *ir.Node, path jsonptr.Pointer, expected *ir.Node) error {
	target, err := jsonptr.Resolve(doc, path)
	if err != nil {
		return err
	}
	if !ir.Equal(target, expected) {
		return fmt.Errorf("%w at %q", ErrTestFailed, path.String())
	}
	return nil
}
