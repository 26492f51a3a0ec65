package model

import "strings"

// Sanitize validates an extraction batch at the boundary before it enters
// the resolution pipeline. Persons without a name and relationships missing
// either endpoint or the term are discarded. Returns the number of entries
// dropped so callers can report them.
func (b *ExtractionBatch) Sanitize() (droppedPersons, droppedRelationships int) {
	persons := b.Persons[:0]
	for _, p := range b.Persons {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			droppedPersons++
			continue
		}
		p.Gender = normalizeGender(p.Gender)
		p.Location = strings.TrimSpace(p.Location)
		persons = append(persons, p)
	}
	b.Persons = persons

	rels := b.Relationships[:0]
	for _, r := range b.Relationships {
		r.Person1 = strings.TrimSpace(r.Person1)
		r.Person2 = strings.TrimSpace(r.Person2)
		r.RelationTerm = strings.TrimSpace(r.RelationTerm)
		if r.Person1 == "" || r.Person2 == "" || r.RelationTerm == "" {
			droppedRelationships++
			continue
		}
		rels = append(rels, r)
	}
	b.Relationships = rels

	return droppedPersons, droppedRelationships
}

// normalizeGender maps free-form gender strings to "M"/"F"/"".
func normalizeGender(g string) string {
	switch strings.ToUpper(strings.TrimSpace(g)) {
	case "M", "MALE":
		return "M"
	case "F", "FEMALE":
		return "F"
	default:
		return ""
	}
}
