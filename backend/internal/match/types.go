package match

// Confidence is a coarse bucket derived from a similarity score, used to
// drive the merge-vs-create-new decision.
type Confidence string

const (
	ConfidenceVeryHigh Confidence = "very_high"
	ConfidenceHigh     Confidence = "high"
	ConfidenceMedium   Confidence = "medium"
	ConfidenceLow      Confidence = "low"
)

// Candidate is a potential match for a person query. Score is 0.0-1.0 for
// name-only matches and boosted to 1.5-2.5 when the phone corroborates.
type Candidate struct {
	PersonID   string     `json:"person_id"`
	FullName   string     `json:"full_name"`
	Phone      string     `json:"phone,omitempty"`
	Email      string     `json:"email,omitempty"`
	City       string     `json:"city,omitempty"`
	Score      float64    `json:"similarity_score"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"match_reason"`
}

// Result is the outcome of a find/resolve operation, with a step-by-step
// reasoning trail for audit and debugging.
type Result struct {
	Query               string      `json:"query"`
	BestMatch           *Candidate  `json:"best_match,omitempty"`
	AllMatches          []Candidate `json:"all_matches"`
	Reasoning           []string    `json:"reasoning"`
	NeedsDisambiguation bool        `json:"needs_disambiguation"`
}

// Action is the merge-vs-create decision for one extracted person.
type Action string

const (
	// ActionCreateNew creates a fresh person record.
	ActionCreateNew Action = "create_new"
	// ActionAutoMerge reuses the matched existing person.
	ActionAutoMerge Action = "auto_merge"
	// ActionNeedsClarification creates a new person but flags the ambiguity
	// for later manual resolution.
	ActionNeedsClarification Action = "needs_clarification"
)

// Decision is the resolved action plus the candidate it applies to.
type Decision struct {
	Action    Action
	Candidate *Candidate
	Reason    string
}
