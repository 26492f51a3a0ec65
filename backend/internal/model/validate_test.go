package model

import "testing"

func TestSanitize(t *testing.T) {
	batch := ExtractionBatch{
		Success: true,
		Persons: []ExtractedPerson{
			{Name: "  Tejas Kawthalkar ", Gender: "male", Location: " Pune "},
			{Name: "   "},
			{Name: "Priya Kawthalkar", Gender: "Female"},
			{Name: "Ahmed Khan", Gender: "unknown"},
		},
		Relationships: []ExtractedRelationship{
			{Person1: "Tejas Kawthalkar", Person2: "Priya Kawthalkar", RelationTerm: " wife "},
			{Person1: "", Person2: "Priya Kawthalkar", RelationTerm: "wife"},
			{Person1: "Tejas Kawthalkar", Person2: "Ahmed Khan", RelationTerm: ""},
		},
	}

	droppedPersons, droppedRels := batch.Sanitize()

	if droppedPersons != 1 {
		t.Errorf("dropped persons = %d, want 1", droppedPersons)
	}
	if droppedRels != 2 {
		t.Errorf("dropped relationships = %d, want 2", droppedRels)
	}
	if len(batch.Persons) != 3 {
		t.Fatalf("persons remaining = %d, want 3", len(batch.Persons))
	}
	if len(batch.Relationships) != 1 {
		t.Fatalf("relationships remaining = %d, want 1", len(batch.Relationships))
	}

	tejas := batch.Persons[0]
	if tejas.Name != "Tejas Kawthalkar" {
		t.Errorf("name not trimmed: %q", tejas.Name)
	}
	if tejas.Gender != "M" {
		t.Errorf("gender = %q, want M", tejas.Gender)
	}
	if tejas.Location != "Pune" {
		t.Errorf("location not trimmed: %q", tejas.Location)
	}
	if batch.Persons[1].Gender != "F" {
		t.Errorf("gender = %q, want F", batch.Persons[1].Gender)
	}
	if batch.Persons[2].Gender != "" {
		t.Errorf("unrecognized gender kept: %q", batch.Persons[2].Gender)
	}
	if batch.Relationships[0].RelationTerm != "wife" {
		t.Errorf("relation term not trimmed: %q", batch.Relationships[0].RelationTerm)
	}
}

func TestSanitize_Empty(t *testing.T) {
	batch := ExtractionBatch{Success: true}
	droppedPersons, droppedRels := batch.Sanitize()
	if droppedPersons != 0 || droppedRels != 0 {
		t.Errorf("empty batch dropped %d/%d entries", droppedPersons, droppedRels)
	}
}
