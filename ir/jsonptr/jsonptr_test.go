package jsonptr

import (
	"errors"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Pointer
		err      bool
	}{
		{in: "", expected: nil},
		{in: "/", expected: Pointer{""}},
		{in: "/foo", expected: Pointer{"foo"}},
		{in: "/foo/0", expected: Pointer{"foo", "0"}},
		{in: "/a~1b", expected: Pointer{"a/b"}},
		{in: "/m~0n", expected: Pointer{"m~n"}},
		{in: "/~01", expected: Pointer{"~1"}},
		{in: "/ ", expected: Pointer{" "}},
		{in: "foo", err: true},
		{in: "a/b", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			if tt.err {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded", tt.in)
				}
				if !errors.Is(err, ErrInvalidPointer) {
					t.Fatalf("error %v is not ErrInvalidPointer", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if !slices.Equal(p, tt.expected) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, p, tt.expected)
			}
			if got := p.String(); got != tt.in {
				t.Errorf("String() = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	tests := []string{"", "foo", "a/b", "m~n", "~1", "~0", "/~", "~/", "~~//"}
	for _, tt := range tests {
		if got := Unescape(Escape(tt)); got != tt {
			t.Errorf("Unescape(Escape(%q)) = %q", tt, got)
		}
	}
}

func TestChildDoesNotAlias(t *testing.T) {
	p := Pointer{"a"}
	c1 := p.Child("b")
	c2 := p.Child("c")
	if c1[1] != "b" || c2[1] != "c" {
		t.Fatalf("children share storage: %v %v", c1, c2)
	}
}

func TestSplit(t *testing.T) {
	parent, last, err := Pointer{"a", "b"}.Split()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(parent, Pointer{"a"}) || last != "b" {
		t.Fatalf("Split = %v, %q", parent, last)
	}
	if _, _, err := (Pointer)(nil).Split(); err == nil {
		t.Fatal("Split of root succeeded")
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		p, prefix Pointer
		expected  bool
	}{
		{Pointer{"a", "b"}, Pointer{"a"}, true},
		{Pointer{"a", "b"}, Pointer{"a", "b"}, true},
		{Pointer{"a", "b"}, nil, true},
		{Pointer{"a"}, Pointer{"a", "b"}, false},
		{Pointer{"ab"}, Pointer{"a"}, false},
	}
	for _, tt := range tests {
		if got := tt.p.HasPrefix(tt.prefix); got != tt.expected {
			t.Errorf("HasPrefix(%v, %v) = %v", tt.p, tt.prefix, got)
		}
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		tok      string
		n        int
		expected int
		err      bool
	}{
		{tok: "0", n: 1, expected: 0},
		{tok: "2", n: 3, expected: 2},
		{tok: "3", n: 3, err: true},
		{tok: "01", n: 10, err: true},
		{tok: "00", n: 10, err: true},
		{tok: "-1", n: 10, err: true},
		{tok: "a", n: 10, err: true},
		{tok: "1x", n: 10, err: true},
		{tok: "", n: 10, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := ParseIndex(tt.tok, tt.n)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseIndex(%q, %d) succeeded", tt.tok, tt.n)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("ParseIndex(%q, %d) = %d, want %d", tt.tok, tt.n, got, tt.expected)
			}
		})
	}
}
