package libdiff

import (
	"strconv"

	"github.com/docpatch-format/go-docpatch/debug"
	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/ir/jsonptr"
	"github.com/docpatch-format/go-docpatch/libpatch"
)

type config struct {
	arrays arrayStrategy
}

type arrayStrategy int

const (
	arrayByIndex arrayStrategy = iota
	arrayByLCS
)

type Option func(*config)

// ByLCS selects the longest-common-subsequence array strategy instead
// of the default index-wise walk.  It produces smaller patches when
// elements were inserted or removed in the middle of an array.
func ByLCS() Option {
	return func(c *config) { c.arrays = arrayByLCS }
}

// Diff computes a patch that transforms left into right.  Equal
// documents yield the empty patch; documents differing in kind at the
// root yield a single whole-document replace.
func Diff(left, right *ir.Node, opts ...Option) libpatch.Patch {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	patch := diffValues(nil, nil, left, right, cfg)
	if debug.Diff() {
		debug.LogAny(patch)
	}
	return patch
}

func diffValues(patch libpatch.Patch, path jsonptr.Pointer, left, right *ir.Node, cfg *config) libpatch.Patch {
	switch {
	case left.Type == ir.ObjectType && right.Type == ir.ObjectType:
		return diffObjects(patch, path, left, right, cfg)
	case left.Type == ir.ArrayType && right.Type == ir.ArrayType:
		if cfg.arrays == arrayByLCS {
			return diffArrayByLCS(patch, path, left, right, cfg)
		}
		return diffArrayByIndex(patch, path, left, right, cfg)
	case ir.Equal(left, right):
		return patch
	default:
		return append(patch, libpatch.Replace(path, right.Clone()))
	}
}

func diffObjects(patch libpatch.Patch, path jsonptr.Pointer, left, right *ir.Node, cfg *config) libpatch.Patch {
	// adds and replaces for right's keys first, in right's order,
	// then removals of left-only keys
	for i, key := range right.Fields {
		rv := right.Values[i]
		if lv := left.Get(key); lv != nil {
			patch = diffValues(patch, path.Child(key), lv, rv, cfg)
			continue
		}
		patch = append(patch, libpatch.Add(path.Child(key), rv.Clone()))
	}
	for _, key := range left.Fields {
		if right.Get(key) == nil {
			patch = append(patch, libpatch.Remove(path.Child(key)))
		}
	}
	return patch
}

// diffArrayByIndex compares elements position by position.  Removals
// apply left to right and each one shrinks the indices of everything
// after it, so the emitted index is the original one minus the number
// of removes already emitted at this level.
func diffArrayByIndex(patch libpatch.Patch, path jsonptr.Pointer, left, right *ir.Node, cfg *config) libpatch.Patch {
	lenL, lenR := len(left.Values), len(right.Values)
	shift := 0
	for i := 0; i < max(lenL, lenR); i++ {
		switch {
		case i < lenL && i < lenR:
			patch = diffValues(patch, path.Child(strconv.Itoa(i)), left.Values[i], right.Values[i], cfg)
		case i < lenL:
			patch = append(patch, libpatch.Remove(path.Child(strconv.Itoa(i-shift))))
			shift++
		default:
			patch = append(patch, libpatch.Add(path.Child(strconv.Itoa(i)), right.Values[i].Clone()))
		}
	}
	return patch
}
