package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/docpatch-format/go-docpatch/format"
	"github.com/docpatch-format/go-docpatch/ir"
)

func TestEncodeJSON(t *testing.T) {
	doc := mustParse(t, `{"b":1,"a":[true,null],"s":"x"}`)

	// compact form is the wire serialization
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, EncodeIndent(0)); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"b":1,"a":[true,null],"s":"x"}` {
		t.Errorf("compact = %s", got)
	}

	buf.Reset()
	if err := Encode(doc, buf); err != nil {
		t.Fatal(err)
	}
	expected := `{
  "b": 1,
  "a": [
    true,
    null
  ],
  "s": "x"
}`
	if got := strings.TrimSpace(buf.String()); got != expected {
		t.Errorf("indented = %s, want %s", got, expected)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(mustParse(t, `{"a":[],"b":{}}`), buf, EncodeIndent(0)); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"a":[],"b":{}}` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	doc := mustParse(t, `{"b":1,"a":["x","y"]}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	// member order survives yaml encoding
	if !strings.Contains(got, "b: 1") || strings.Index(got, "b: 1") > strings.Index(got, "a:") {
		t.Errorf("yaml = %q", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(mustParse(t, `[1,"a"]`)); got != `[1,"a"]` {
		t.Errorf("MustString = %s", got)
	}
}

func TestEncodeColorsNilSafe(t *testing.T) {
	var c *Colors
	if got := c.value(ir.StringType, `"x"`); got != `"x"` {
		t.Errorf("nil colors value = %q", got)
	}
	if got := c.punct("{"); got != "{" {
		t.Errorf("nil colors punct = %q", got)
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
