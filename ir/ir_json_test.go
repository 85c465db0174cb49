package ir

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-1`,
		`1.5`,
		`1e30`,
		`"hello"`,
		`""`,
		`[]`,
		`[1,2,3]`,
		`{}`,
		`{"a":1,"b":[true,null],"c":{"d":"e"}}`,
		// member order survives even when not sorted
		`{"z":1,"a":2,"m":3}`,
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			node, err := Parse([]byte(tt))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			d, err := json.Marshal(node)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(d) != tt {
				t.Errorf("round trip = %s, want %s", d, tt)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`[1,2`,
		`{"a"}`,
		`1 2`,
		`tru`,
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			if _, err := Parse([]byte(tt)); err == nil {
				t.Errorf("Parse(%q) succeeded", tt)
			} else if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error %v is not ErrParse", tt, err)
			}
		})
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	node, err := Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 1 {
		t.Fatalf("fields = %v", node.Fields)
	}
	if v := node.Get("a"); *v.Int64 != 2 {
		t.Errorf("Get(a) = %v, want last occurrence", v)
	}
}

func TestParseNumbers(t *testing.T) {
	node, err := Parse([]byte(`[1, 1.0, 9223372036854775807, 1e400]`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Values[0].Int64 == nil {
		t.Errorf("1 did not decode as integer")
	}
	if node.Values[1].Float64 == nil {
		t.Errorf("1.0 did not decode as float")
	}
	if node.Values[2].Int64 == nil || *node.Values[2].Int64 != 9223372036854775807 {
		t.Errorf("max int64 did not survive")
	}
	// out of float range: the value saturates to +Inf, the raw text is
	// retained for re-serialization
	if node.Values[3].Float64 == nil || !math.IsInf(*node.Values[3].Float64, 1) {
		t.Errorf("1e400 did not decode as +Inf")
	}
	if node.Values[3].Number != "1e400" {
		t.Errorf("raw numeral = %q", node.Values[3].Number)
	}
}
