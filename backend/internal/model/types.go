package model

// ============================================================================
// Core Data Model
// ============================================================================

// ExtractedPerson is one person candidate produced by the extraction
// collaborator. It lives only for the duration of one ingestion batch.
type ExtractedPerson struct {
	Name       string `json:"name"`
	Gender     string `json:"gender,omitempty"` // "M", "F", or "" when unknown
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Location   string `json:"location,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Interests  string `json:"interests,omitempty"`
	IsSpeaker  bool   `json:"is_speaker,omitempty"`
}

// ExtractedRelationship is a raw relationship statement between two named
// persons. By convention relation_term names the role person2 plays for
// person1 ("my wife is Priya" -> person1=speaker, person2=Priya, term=wife).
type ExtractedRelationship struct {
	Person1      string `json:"person1"`
	Person2      string `json:"person2"`
	RelationTerm string `json:"relation_term"`
	Context      string `json:"context,omitempty"`
}

// ExtractionBatch is the full output of one extraction call.
type ExtractionBatch struct {
	Success       bool                    `json:"success"`
	Persons       []ExtractedPerson       `json:"persons"`
	Relationships []ExtractedRelationship `json:"relationships"`
	RawText       string                  `json:"raw_text,omitempty"`
	Error         string                  `json:"error,omitempty"`
}

// NormalizedRelationship is an ExtractedRelationship after term lookup.
type NormalizedRelationship struct {
	Person1        string `json:"person1"`
	Person2        string `json:"person2"`
	RelationTerm   string `json:"relation_term"`
	NormalizedTerm string `json:"normalized_term,omitempty"`
	RelationType   string `json:"relation_type"` // "unknown" when the term is not in the table
	IsReciprocal   bool   `json:"is_reciprocal"`
}

// PersonRecord is a persisted person as held by the person store.
type PersonRecord struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Gender        string `json:"gender,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	City          string `json:"city,omitempty"`
	Occupation    string `json:"occupation,omitempty"`
	Interests     string `json:"interests,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	FamilyKey     string `json:"family_key,omitempty"`
	IsArchived    bool   `json:"is_archived,omitempty"`
}

// GraphEdge is one directed relationship edge between two persons.
type GraphEdge struct {
	PersonAID    string `json:"person_a_id"`
	PersonBID    string `json:"person_b_id"`
	Type         string `json:"type"`     // PARENT_OF, SPOUSE_OF, ...
	Specific     string `json:"specific"` // father, wife, brother, ...
	IsReciprocal bool   `json:"is_reciprocal"`
}
