package relation

import "testing"

func TestNormalize_KnownTerms(t *testing.T) {
	tests := []struct {
		term     string
		wantTerm string
		wantType Type
		gender   string
	}{
		{"wife", "wife", TypeSpouse, "F"},
		{"Wife", "wife", TypeSpouse, "F"},
		{"  husband  ", "husband", TypeSpouse, "M"},
		{"dad", "father", TypeParent, "M"},
		{"aai", "mother", TypeParent, "F"},
		{"bhau", "brother", TypeSibling, "M"},
		{"thatha", "grandfather", TypeGrandparent, "M"},
		{"nanna", "father", TypeParent, "M"},
		{"coworker", "colleague", TypeColleague, ""},
		{"guru", "mentor", TypeMentor, ""},
		{"fan of", "fan", TypeFan, ""},
		{"friend of", "friend", TypeFriend, ""},
	}

	for _, tt := range tests {
		info := Normalize(tt.term)
		if info == nil {
			t.Errorf("Normalize(%q) = nil, want %q", tt.term, tt.wantTerm)
			continue
		}
		if info.Term != tt.wantTerm {
			t.Errorf("Normalize(%q).Term = %q, want %q", tt.term, info.Term, tt.wantTerm)
		}
		if info.Type != tt.wantType {
			t.Errorf("Normalize(%q).Type = %q, want %q", tt.term, info.Type, tt.wantType)
		}
		if info.Gender != tt.gender {
			t.Errorf("Normalize(%q).Gender = %q, want %q", tt.term, info.Gender, tt.gender)
		}
	}
}

func TestNormalize_UnknownTerms(t *testing.T) {
	for _, term := range []string{"", "bestie", "arch-nemesis", "xyzzy"} {
		if info := Normalize(term); info != nil {
			t.Errorf("Normalize(%q) = %+v, want nil", term, info)
		}
	}
}

func TestNormalize_ReturnsCopy(t *testing.T) {
	a := Normalize("wife")
	a.Gender = "X"
	b := Normalize("wife")
	if b.Gender != "F" {
		t.Error("Normalize must not expose the shared table entry")
	}
}

func TestReciprocal_GenderRefinement(t *testing.T) {
	tests := []struct {
		term        string
		otherGender string
		want        string
	}{
		{"father", "M", "son"},
		{"father", "F", "daughter"},
		{"father", "", "child"},
		{"son", "F", "mother"},
		{"sister", "M", "brother"},
		{"grandmother", "M", "grandson"},
		{"grandson", "F", "grandmother"},
		{"wife", "M", "husband"},
		{"husband", "F", "wife"},
		{"boss", "", "employee"},
		{"mentor", "F", "mentee"},
		{"fan", "", "idol"},
		{"friend", "M", "friend"},
		{"xyzzy", "M", "relative"},
	}

	for _, tt := range tests {
		got := Reciprocal(tt.term, tt.otherGender)
		if got != tt.want {
			t.Errorf("Reciprocal(%q, %q) = %q, want %q", tt.term, tt.otherGender, got, tt.want)
		}
	}
}

func TestReciprocal_SpouseRoundTrip(t *testing.T) {
	// wife of a male speaker reciprocates to husband, and back.
	if got := Reciprocal("wife", "M"); got != "husband" {
		t.Fatalf("Reciprocal(wife, M) = %q", got)
	}
	if got := Reciprocal("husband", "F"); got != "wife" {
		t.Fatalf("Reciprocal(husband, F) = %q", got)
	}
}

func TestImpliedGender(t *testing.T) {
	if got := ImpliedGender("wife"); got != "F" {
		t.Errorf("ImpliedGender(wife) = %q, want F", got)
	}
	if got := ImpliedGender("cousin"); got != "" {
		t.Errorf("ImpliedGender(cousin) = %q, want empty", got)
	}
	if got := ImpliedGender("xyzzy"); got != "" {
		t.Errorf("ImpliedGender(xyzzy) = %q, want empty", got)
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("patni") {
		t.Error("patni should be a known term")
	}
	if IsKnown("bestie") {
		t.Error("bestie should not be a known term")
	}
}
