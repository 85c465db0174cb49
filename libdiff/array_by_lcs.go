package libdiff

import (
	"strconv"
	"strings"

	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/ir/jsonptr"
	"github.com/docpatch-format/go-docpatch/libpatch"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArrayByLCS aligns the two arrays with an LCS over per-element
// summaries:
//
//  1. each element is summarized as <type>-<value> for scalars and
//     just <type> for containers
//  2. the two summary sequences are interned into runes and diffed
//  3. matched positions recurse element-wise, so a summary collision
//     only costs patch minimality, never correctness
//  4. deletions and insertions become remove/add operations at the
//     index the element holds at that point of the patch sequence
func diffArrayByLCS(patch libpatch.Patch, path jsonptr.Pointer, left, right *ir.Node, cfg *config) libpatch.Patch {
	m := map[string]rune{}
	fromRunes := mapValues(m, left)
	toRunes := mapValues(m, right)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0 // position in left, right
	cur := 0       // position in the array as patched so far
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range diff.Text {
				patch = diffValues(patch, path.Child(strconv.Itoa(cur)), left.Values[fi], right.Values[ti], cfg)
				cur++
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			for range diff.Text {
				// removal does not advance cur: the next element
				// slides into this index
				patch = append(patch, libpatch.Remove(path.Child(strconv.Itoa(cur))))
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				patch = append(patch, libpatch.Add(path.Child(strconv.Itoa(cur)), right.Values[ti].Clone()))
				cur++
				ti++
			}
		}
	}
	return patch
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = internRune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// internRune skips the surrogate range, which cannot survive a
// []rune/string round trip inside the diff library.
func internRune(n int) rune {
	r := rune(n)
	if r >= 0xd800 {
		r += 0x800
	}
	return r
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		return node.Type.String() + "-" + node.NumberString()
	default:
		panic("type")
	}
}
