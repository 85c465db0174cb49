// Package jsonptr implements RFC 6901 JSON pointers over ir.Node
// document trees.
//
// A pointer's wire form is either the empty string, addressing the
// whole document, or a sequence of '/'-prefixed tokens with '~1'
// standing for '/' and '~0' for '~' inside a token.
package jsonptr

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrInvalidPointer = errors.New("invalid pointer")

// Append is the token addressing the position one past the end of an
// array.  It is only meaningful as the final token of an add, move or
// copy target path.
const Append = "-"

// Pointer is an immutable sequence of decoded tokens.  The zero value
// addresses the document root.
type Pointer []string

// Parse splits a wire-form pointer into decoded tokens.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return nil, nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("%w: %q does not start with '/'", ErrInvalidPointer, s)
	}
	toks := strings.Split(s[1:], "/")
	res := make(Pointer, len(toks))
	for i, tok := range toks {
		res[i] = Unescape(tok)
	}
	return res, nil
}

// String renders the pointer in wire form, escaping each token.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range p {
		sb.WriteByte('/')
		sb.WriteString(Escape(tok))
	}
	return sb.String()
}

func (p Pointer) IsRoot() bool {
	return len(p) == 0
}

// Child returns a new pointer extending p by one token.
func (p Pointer) Child(tok string) Pointer {
	res := make(Pointer, 0, len(p)+1)
	res = append(res, p...)
	return append(res, tok)
}

// Split separates the pointer into its parent and final token.  The
// root pointer has no parent and cannot be split.
func (p Pointer) Split() (Pointer, string, error) {
	if len(p) == 0 {
		return nil, "", fmt.Errorf("%w: root has no parent", ErrInvalidPointer)
	}
	return p[:len(p)-1], p[len(p)-1], nil
}

// HasPrefix reports whether prefix addresses p or one of its
// ancestors.
func (p Pointer) HasPrefix(prefix Pointer) bool {
	if len(prefix) > len(p) {
		return false
	}
	return slices.Equal(p[:len(prefix)], prefix)
}

// Escape encodes a single decoded token for wire form.
func Escape(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

// Unescape decodes a single wire-form token.  Escape and Unescape are
// symmetric: Unescape(Escape(s)) == s for every s.
func Unescape(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}

// ParseIndex reads an array index token.  RFC 6901 prohibits leading
// zeros; the result must land in [0, n).  Callers pass len+1 for n
// when the token addresses an insertion point.
func ParseIndex(tok string, n int) (int, error) {
	if len(tok) > 1 && tok[0] == '0' {
		return 0, fmt.Errorf("%w: leading zero in index %q", ErrInvalidPointer, tok)
	}
	idx, err := strconv.ParseUint(tok, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrInvalidPointer, tok)
	}
	if int(idx) >= n {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidPointer, idx, n)
	}
	return int(idx), nil
}
