package match

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Srikanth Garu", "srikanth"},
		{"Mr. John Smith", "john smith"},
		{"Dr. Priya Kawthalkar", "priya kawthalkar"},
		{"  Tejas   Kawthalkar ", "tejas kawthalkar"},
		{"Amma", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	names := []string{"Mr. John Smith", "Srikanth Garu", "priya", ""}
	for _, name := range names {
		once := NormalizeName(name)
		twice := NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: %q != %q", name, once, twice)
		}
	}
}

func TestSimilarity_Identity(t *testing.T) {
	if got := Similarity("Priya Kawthalkar", "Priya Kawthalkar"); got != 1.0 {
		t.Errorf("identical names scored %f, want 1.0", got)
	}
	// Honorifics are stripped before comparison.
	if got := Similarity("Srikanth Garu", "Srikanth"); got != 1.0 {
		t.Errorf("honorific-only difference scored %f, want 1.0", got)
	}
	if got := Similarity("", ""); got != 0 {
		t.Errorf("two empty names scored %f, want 0", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Priya Kawthalkar", "Priya Kawthalker"},
		{"Tejas", "Tejas Kawthalkar"},
		{"Rajesh Mehta", "Ramesh Mehta"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %f but reversed = %f", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_VowelDrift(t *testing.T) {
	// Same consonant skeleton; common transliteration variance.
	got := Similarity("Anil Shikarkhane", "Anil Shikarkane")
	if got < 0.9 {
		t.Errorf("vowel-drift variant scored %f, want >= 0.9", got)
	}
}

func TestSimilarity_TokenWeighting(t *testing.T) {
	// Shared surname dominates via the 40/60 token split.
	got := Similarity("Priya Kawthalkar", "Pria Kawthalkar")
	if got < 0.85 {
		t.Errorf("first-name typo with same surname scored %f, want >= 0.85", got)
	}

	unrelated := Similarity("Priya Kawthalkar", "Ahmed Khan")
	if unrelated >= 0.7 {
		t.Errorf("unrelated names scored %f, want < 0.7", unrelated)
	}
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"Priya", "Priya Kawthalkar"},
		{"x", ""},
		{"José", "Jose"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %f out of [0, 1]", p[0], p[1], got)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+1 (408) 444-5555", "14084445555"},
		{"+91 98765 43210", "919876543210"},
		{"98765-43210", "9876543210"},
		{"", ""},
		{"no digits", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhonesMatch(t *testing.T) {
	tests := []struct {
		p1, p2 string
		want   bool
	}{
		{"919876543210", "919876543210", true},
		// Country-code prefix tolerance via 10-digit suffix.
		{"919876543210", "9876543210", true},
		{"9876543210", "919876543210", true},
		{"919876543210", "919876543211", false},
		// Short numbers must match exactly.
		{"12345", "12345", true},
		{"12345", "612345", false},
		{"", "9876543210", false},
		{"9876543210", "", false},
	}
	for _, tt := range tests {
		if got := PhonesMatch(tt.p1, tt.p2); got != tt.want {
			t.Errorf("PhonesMatch(%q, %q) = %v, want %v", tt.p1, tt.p2, got, tt.want)
		}
	}
}
