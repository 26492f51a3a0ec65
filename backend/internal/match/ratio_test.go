package match

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 0},
		{"abc", "abc", 1.0},
		{"abc", "", 0},
		{"", "abc", 0},
		// Classic Ratcliff/Obershelp example.
		{"mathematics", "matematica", 2.0 * 9 / 21},
		{"abcd", "bcda", 2.0 * 3 / 8},
		{"abc", "xyz", 0},
	}

	for _, tt := range tests {
		if got := ratio(tt.a, tt.b); !almostEqual(got, tt.want) {
			t.Errorf("ratio(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatio_Unicode(t *testing.T) {
	// Rune-based, not byte-based: multibyte characters count once.
	if got := ratio("José", "José"); got != 1.0 {
		t.Errorf("ratio over identical unicode = %f, want 1.0", got)
	}
	got := ratio("José", "Jose")
	want := 2.0 * 3 / 8
	if !almostEqual(got, want) {
		t.Errorf("ratio(José, Jose) = %f, want %f", got, want)
	}
}
