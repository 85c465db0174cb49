package libpatch

import (
	"errors"
	"fmt"

	"github.com/docpatch-format/go-docpatch/ir/jsonptr"
)

var (
	// ErrInvalidPointer reports a path that is malformed, missing,
	// or structurally inapplicable.
	ErrInvalidPointer = jsonptr.ErrInvalidPointer

	// ErrInvalidFromPointer is ErrInvalidPointer for the source of
	// a move or copy.
	ErrInvalidFromPointer = errors.New("invalid from pointer")

	// ErrTestFailed reports a test operation whose value did not
	// match.  A test against a missing path reports
	// ErrInvalidPointer instead.
	ErrTestFailed = errors.New("test failed")

	// ErrMoveInsideItself reports a move whose target lies inside
	// the subtree being moved.
	ErrMoveInsideItself = errors.New("cannot move inside itself")
)

// Error is the error returned by Apply and ApplyUnsafe.  It wraps one
// of the sentinel errors above and records which operation failed.
type Error struct {
	// Index is the zero-based position of the failing operation.
	Index int
	// Path is the wire form of the path the operation was
	// operating on.
	Path string

	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("op %d at %q: %v", e.Index, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
