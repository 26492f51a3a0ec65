package match

import (
	"context"
	"errors"
	"testing"

	"kincrm/backend/internal/model"
	kerrors "kincrm/backend/pkg/errors"
)

func newPronounResolver(t *testing.T, persons ...model.PersonRecord) (*PronounResolver, []string) {
	t.Helper()
	s := seedPersons(t, persons...)
	ids := make([]string, 0, len(persons))
	for _, p := range persons {
		ids = append(ids, p.ID)
	}
	return NewPronounResolver(s, NewDuplicateResolver(s, 0.70)), ids
}

func TestExpectedGender(t *testing.T) {
	tests := []struct {
		pronoun string
		want    string
	}{
		{"he", "M"}, {"Him", "M"}, {"his", "M"},
		{"she", "F"}, {"her", "F"}, {"HERS", "F"},
		{"they", ""}, {"them", ""}, {"it", ""},
	}
	for _, tt := range tests {
		if got := ExpectedGender(tt.pronoun); got != tt.want {
			t.Errorf("ExpectedGender(%q) = %q, want %q", tt.pronoun, got, tt.want)
		}
	}
}

func TestResolve_ContextPersonGenderMatch(t *testing.T) {
	r, _ := newPronounResolver(t,
		model.PersonRecord{ID: "p1", FullName: "Priya Kawthalkar", Gender: "F"},
	)

	result, err := r.Resolve(context.Background(), "she", "p1", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.BestMatch == nil || result.BestMatch.PersonID != "p1" {
		t.Fatal("expected resolution to the context person")
	}
	if result.BestMatch.Confidence != ConfidenceVeryHigh {
		t.Errorf("confidence = %s, want %s", result.BestMatch.Confidence, ConfidenceVeryHigh)
	}
}

func TestResolve_ContextPersonGenderMismatch(t *testing.T) {
	// "she" while editing a male contact must not resolve to him.
	r, _ := newPronounResolver(t,
		model.PersonRecord{ID: "p1", FullName: "Tejas Kawthalkar", Gender: "M"},
	)

	result, err := r.Resolve(context.Background(), "she", "p1", nil)
	if err == nil {
		t.Fatal("expected insufficient-context error")
	}
	var insufficient *kerrors.ErrInsufficientContext
	if !errors.As(err, &insufficient) {
		t.Fatalf("error type = %T, want ErrInsufficientContext", err)
	}
	if result.BestMatch != nil {
		t.Errorf("resolved to %s despite gender mismatch", result.BestMatch.FullName)
	}
}

func TestResolve_FallsBackToRecentNames(t *testing.T) {
	r, _ := newPronounResolver(t,
		model.PersonRecord{ID: "p1", FullName: "Tejas Kawthalkar", Gender: "M"},
		model.PersonRecord{ID: "p2", FullName: "Priya Kawthalkar", Gender: "F"},
	)

	// Context person is male; "she" should skip him and take the recently
	// mentioned female.
	result, err := r.Resolve(context.Background(), "she", "p1", []string{"Priya Kawthalkar"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.BestMatch == nil || result.BestMatch.PersonID != "p2" {
		t.Fatal("expected resolution to the recent female mention")
	}
}

func TestResolve_RecentNamesOrder(t *testing.T) {
	r, _ := newPronounResolver(t,
		model.PersonRecord{ID: "p1", FullName: "Anil Deshmukh", Gender: "M"},
		model.PersonRecord{ID: "p2", FullName: "Rajesh Mehta", Gender: "M"},
	)

	result, err := r.Resolve(context.Background(), "he", "", []string{"Rajesh Mehta", "Anil Deshmukh"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.BestMatch == nil || result.BestMatch.PersonID != "p2" {
		t.Fatal("expected the most recent mention to win")
	}
}

func TestResolve_NoContext(t *testing.T) {
	r, _ := newPronounResolver(t)

	result, err := r.Resolve(context.Background(), "he", "", nil)
	if err == nil {
		t.Fatal("expected insufficient-context error")
	}
	if !kerrors.IsErrorType(err, kerrors.ErrorTypeMatch) {
		t.Errorf("error type mismatch: %v", err)
	}
	if result == nil || len(result.Reasoning) == 0 {
		t.Error("failed resolution must still carry its reasoning trail")
	}
}

func TestResolve_NeutralPronounUsesContext(t *testing.T) {
	r, _ := newPronounResolver(t,
		model.PersonRecord{ID: "p1", FullName: "Tejas Kawthalkar", Gender: "M"},
	)

	result, err := r.Resolve(context.Background(), "they", "p1", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.BestMatch == nil || result.BestMatch.PersonID != "p1" {
		t.Fatal("neutral pronoun should accept the context person regardless of gender")
	}
}
