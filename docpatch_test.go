package docpatch

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/libpatch"

	"github.com/google/go-cmp/cmp"
)

func TestEndToEnd(t *testing.T) {
	doc := mustParse(t, `{"title": "Old"}`)
	patch, err := DecodePatch([]byte(`[
		{"op": "test", "path": "/title", "value": "Old"},
		{"op": "replace", "path": "/title", "value": "New"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if err := Apply(doc, patch); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(doc, mustParse(t, `{"title": "New"}`)) {
		d, _ := json.Marshal(doc)
		t.Fatalf("doc = %s", d)
	}

	// a failing first test leaves the doc unchanged
	doc = mustParse(t, `{"title": "Other"}`)
	err = Apply(doc, patch)
	if !errors.Is(err, libpatch.ErrTestFailed) {
		t.Fatalf("error = %v, want test failure", err)
	}
	var pErr *libpatch.Error
	if !errors.As(err, &pErr) || pErr.Index != 0 {
		t.Fatalf("error = %#v, want failure at op 0", err)
	}
	if !ir.Equal(doc, mustParse(t, `{"title": "Other"}`)) {
		d, _ := json.Marshal(doc)
		t.Fatalf("doc mutated: %s", d)
	}
}

func TestDiffApplyMerge(t *testing.T) {
	left := mustParse(t, `{"servers": [{"name": "a", "port": 80}]}`)
	right := mustParse(t, `{"servers": [{"name": "a", "port": 8080}], "tls": true}`)
	patch := Diff(left, right)
	doc := left.Clone()
	if err := Apply(doc, patch); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(doc, right) {
		t.Fatalf("apply(diff) does not reproduce right:\n%s", cmp.Diff(right, doc))
	}

	Merge(doc, mustParse(t, `{"tls": null, "servers": "none"}`))
	if !ir.Equal(doc, mustParse(t, `{"servers": "none"}`)) {
		d, _ := json.Marshal(doc)
		t.Fatalf("merge = %s", d)
	}
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := ir.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}
