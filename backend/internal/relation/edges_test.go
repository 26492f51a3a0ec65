package relation

import "testing"

func TestReciprocalEdgeType(t *testing.T) {
	tests := []struct {
		in   EdgeType
		want EdgeType
	}{
		{EdgeParentOf, EdgeChildOf},
		{EdgeChildOf, EdgeParentOf},
		{EdgeSpouseOf, EdgeSpouseOf},
		{EdgeSiblingOf, EdgeSiblingOf},
		{EdgeGrandparentOf, EdgeGrandchildOf},
		{EdgeMentorOf, EdgeMenteeOf},
		{EdgeMenteeOf, EdgeMentorOf},
		{EdgeFanOf, EdgeIdolOf},
		{EdgeIdolOf, EdgeFanOf},
		{EdgeColleagueOf, EdgeColleagueOf},
		{EdgeType("BOGUS"), EdgeRelativeOf},
	}

	for _, tt := range tests {
		if got := ReciprocalEdgeType(tt.in); got != tt.want {
			t.Errorf("ReciprocalEdgeType(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestReciprocalEdgeType_Involution(t *testing.T) {
	for edge := range reciprocalEdges {
		if back := ReciprocalEdgeType(ReciprocalEdgeType(edge)); back != edge {
			t.Errorf("reciprocal of reciprocal of %s = %s, want %s", edge, back, edge)
		}
	}
}

func TestValidEdgeType(t *testing.T) {
	if !ValidEdgeType(EdgeSpouseOf) {
		t.Error("SPOUSE_OF should be valid")
	}
	if ValidEdgeType(EdgeType("DROP TABLE")) {
		t.Error("arbitrary strings must not validate")
	}
}

func TestSpecificLabel(t *testing.T) {
	tests := []struct {
		edge   EdgeType
		gender string
		want   string
	}{
		{EdgeParentOf, "M", "father"},
		{EdgeParentOf, "F", "mother"},
		{EdgeParentOf, "", "parent"},
		{EdgeSpouseOf, "F", "wife"},
		{EdgeGrandchildOf, "M", "grandson"},
		{EdgeColleagueOf, "M", "colleague"},
		{EdgeIdolOf, "", "idol"},
		{EdgeType("BOGUS"), "", "relative"},
	}

	for _, tt := range tests {
		if got := SpecificLabel(tt.edge, tt.gender); got != tt.want {
			t.Errorf("SpecificLabel(%s, %q) = %q, want %q", tt.edge, tt.gender, got, tt.want)
		}
	}
}

func TestRoleLabel(t *testing.T) {
	wife := Normalize("wife")
	if got := RoleLabel(wife, "F"); got != "wife" {
		t.Errorf("RoleLabel(wife, F) = %q, want wife", got)
	}
	// Gender falls back to what the term implies.
	if got := RoleLabel(wife, ""); got != "wife" {
		t.Errorf("RoleLabel(wife, unknown) = %q, want wife", got)
	}

	// Social roles keep the canonical term, not the generic edge label.
	boss := Normalize("boss")
	if got := RoleLabel(boss, "M"); got != "boss" {
		t.Errorf("RoleLabel(boss, M) = %q, want boss", got)
	}

	uncle := Normalize("uncle")
	if got := RoleLabel(uncle, ""); got != "uncle" {
		t.Errorf("RoleLabel(uncle, unknown) = %q, want uncle", got)
	}
}
