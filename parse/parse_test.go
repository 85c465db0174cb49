package parse

import (
	"encoding/json"
	"testing"

	"github.com/docpatch-format/go-docpatch/format"
	"github.com/docpatch-format/go-docpatch/ir"
)

func TestParseJSONDefault(t *testing.T) {
	node, err := Parse([]byte(`{"a": [1, null]}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("type = %v", node.Type)
	}
}

func TestParseYAML(t *testing.T) {
	in := []byte(`
b: 1
a:
  - x
  - true
  - 1.5
c: null
`)
	node, err := Parse(in, ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	d, err := json.Marshal(node)
	if err != nil {
		t.Fatal(err)
	}
	// yaml member order is preserved
	if string(d) != `{"b":1,"a":["x",true,1.5],"c":null}` {
		t.Errorf("got %s", d)
	}
}

func TestParseYAMLError(t *testing.T) {
	if _, err := Parse([]byte("a: [1,"), ParseFormat(format.YAMLFormat)); err == nil {
		t.Error("parse succeeded")
	}
}
