package libpatch

import (
	"fmt"

	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/ir/jsonptr"
)

// undoKind selects the inverse primitive replayed on rollback.
type undoKind int

const (
	undoAdd     undoKind = iota // re-add value at path
	undoRemove                  // remove at path, append marker allowed
	undoReplace                 // put value back at path
	undoMove                    // move the value at path back to from, restoring value at path
)

// undoEntry is one recorded inverse operation.  The log is a plain
// ordered sequence rather than call-stack recursion so that rollback
// depth does not track patch length.
type undoEntry struct {
	kind  undoKind
	path  jsonptr.Pointer
	from  jsonptr.Pointer
	value *ir.Node
}

func (u *undoEntry) revert(doc *ir.Node) error {
	switch u.kind {
	case undoAdd:
		_, err := add(doc, u.path, u.value)
		return err
	case undoRemove:
		_, err := remove(doc, u.path, true)
		return err
	case undoReplace:
		_, err := replace(doc, u.path, u.value)
		return err
	case undoMove:
		return revertMove(doc, u)
	}
	return fmt.Errorf("unrecognized undo kind %d", u.kind)
}

// revertMove detaches the moved value from path, restores whatever the
// move overwrote there, and puts the moved value back at from.  It
// works from primitives rather than mov: the reverse of a legal move
// to an ancestor of its source would fail mov's self-containment
// check, and a move to the root has no removable path at all.
func revertMove(doc *ir.Node, u *undoEntry) error {
	var v *ir.Node
	if u.path.IsRoot() {
		// a move to the root always overwrites the whole document
		if u.value == nil {
			return fmt.Errorf("move undo at root without prior document")
		}
		v = &ir.Node{}
		*v = *doc
		*doc = *u.value
	} else {
		var err error
		v, err = remove(doc, u.path, true)
		if err != nil {
			return err
		}
		if u.value != nil {
			if _, err := add(doc, u.path, u.value); err != nil {
				return err
			}
		}
	}
	_, err := add(doc, u.from, v)
	return err
}

// rollback folds the undo log in reverse.  Undo entries derive from
// operations that succeeded, so a replay failure is an internal
// invariant violation, not a reportable condition.
func rollback(doc *ir.Node, undoLog []undoEntry) {
	for i := len(undoLog) - 1; i >= 0; i-- {
		if err := undoLog[i].revert(doc); err != nil {
			panic(fmt.Sprintf("libpatch: undo replay failed: %v", err))
		}
	}
}
