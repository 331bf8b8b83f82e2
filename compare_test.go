package basicops

import "testing"

func TestComparisons(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"LessThan(1, 2)", LessThan(1, 2), true},
		{"LessThan(2, 2)", LessThan(2, 2), false},
		{"GreaterThan(3, 2)", GreaterThan(3, 2), true},
		{"GreaterThan(2, 3)", GreaterThan(2, 3), false},
		{"Equal(2, 2)", Equal(2, 2), true},
		{"Equal(2, 3)", Equal(2, 3), false},
		{"NotEqual(2, 3)", NotEqual(2, 3), true},
		{"NotEqual(2, 2)", NotEqual(2, 2), false},
		{"LessEqual(2, 2)", LessEqual(2, 2), true},
		{"LessEqual(3, 2)", LessEqual(3, 2), false},
		{"GreaterEqual(2, 2)", GreaterEqual(2, 2), true},
		{"GreaterEqual(1, 2)", GreaterEqual(1, 2), false},
		{"LessThan floats", LessThan(1.5, 1.6), true},
		{"LessThan strings", LessThan("a", "b"), true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %t, want %t", tt.name, tt.got, tt.want)
		}
	}
}

// Trichotomy: exactly one of <, ==, > holds for any ordered pair.
func TestComparisonTrichotomy(t *testing.T) {
	pairs := [][2]int{{1, 2}, {2, 1}, {2, 2}, {-5, 5}, {0, 0}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		n := 0
		for _, h := range []bool{LessThan(a, b), Equal(a, b), GreaterThan(a, b)} {
			if h {
				n++
			}
		}
		if n != 1 {
			t.Errorf("trichotomy violated for (%d, %d): %d predicates hold", a, b, n)
		}
	}
}
