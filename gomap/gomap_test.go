package gomap

import (
	"testing"

	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/libdiff"
	"github.com/docpatch-format/go-docpatch/libpatch"

	"github.com/google/go-cmp/cmp"
)

type server struct {
	Name string   `json:"name"`
	Port int      `json:"port"`
	Tags []string `json:"tags,omitempty"`
}

func TestFromGoToGo(t *testing.T) {
	in := server{Name: "a", Port: 80, Tags: []string{"x"}}
	node, err := FromGo(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Get("name"); got == nil || got.String != "a" {
		t.Fatalf("name = %v", got)
	}
	var out server
	if err := ToGo(node, &out); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("round trip mismatch:\n%s", d)
	}
}

// diffing two Go values via their document form
func TestDiffGoValues(t *testing.T) {
	left, err := FromGo(server{Name: "a", Port: 80})
	if err != nil {
		t.Fatal(err)
	}
	right, err := FromGo(server{Name: "a", Port: 8080})
	if err != nil {
		t.Fatal(err)
	}
	patch := libdiff.Diff(left, right)
	if len(patch) != 1 || patch[0].Kind != libpatch.OpReplace {
		t.Fatalf("patch = %v", patch)
	}
	if err := libpatch.Apply(left, patch); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(left, right) {
		t.Errorf("apply(diff) mismatch")
	}
}
