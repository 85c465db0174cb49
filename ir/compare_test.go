package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromMembers(), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: numeric value, not representation
		{"Int == Float", FromInt(1), FromFloat(1.0), 0},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Int < Float", FromInt(1), FromFloat(1.5), -1},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", FromMembers(), FromMembers(), 0},
		{"Short Object < Long Object",
			FromMembers(Member{Key: "a", Val: FromInt(1)}),
			FromMembers(Member{Key: "a", Val: FromInt(1)}, Member{Key: "b", Val: FromInt(2)}),
			-1},
		{"Object Key Comparison",
			FromMembers(Member{Key: "a", Val: FromInt(1)}),
			FromMembers(Member{Key: "b", Val: FromInt(1)}),
			-1},
		{"Object Value Comparison",
			FromMembers(Member{Key: "a", Val: FromInt(1)}),
			FromMembers(Member{Key: "a", Val: FromInt(2)}),
			-1},
		{"Object Member Order Irrelevant",
			FromMembers(Member{Key: "a", Val: FromInt(1)}, Member{Key: "b", Val: FromInt(2)}),
			FromMembers(Member{Key: "b", Val: FromInt(2)}, Member{Key: "a", Val: FromInt(1)}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

// numerals beyond float64 range decode to ±Inf, which still orders
// correctly against in-range numbers
func TestCompareOutOfRangeNumerals(t *testing.T) {
	big, err := Parse([]byte(`1e400`))
	if err != nil {
		t.Fatal(err)
	}
	small, err := Parse([]byte(`-1e400`))
	if err != nil {
		t.Fatal(err)
	}
	if got := Compare(big, FromInt(5)); got != 1 {
		t.Errorf("Compare(1e400, 5) = %d, want 1", got)
	}
	if got := Compare(small, FromInt(5)); got != -1 {
		t.Errorf("Compare(-1e400, 5) = %d, want -1", got)
	}
	if got := Compare(small, big); got != -1 {
		t.Errorf("Compare(-1e400, 1e400) = %d, want -1", got)
	}
	if !Equal(big, big.Clone()) {
		t.Errorf("1e400 != itself")
	}
}

func TestEqualNumbers(t *testing.T) {
	if !Equal(FromInt(1), FromFloat(1.0)) {
		t.Errorf("1 != 1.0")
	}
	if Equal(FromInt(1), FromString("1")) {
		t.Errorf("1 == \"1\"")
	}
}
