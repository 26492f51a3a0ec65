package relation

// reciprocalEdges maps each edge type to the type of the automatically
// derived reverse edge. Symmetric relations map to themselves; asymmetric
// social relations (mentor/mentee, fan/idol) use distinct pairs.
var reciprocalEdges = map[EdgeType]EdgeType{
	EdgeParentOf:      EdgeChildOf,
	EdgeChildOf:       EdgeParentOf,
	EdgeSpouseOf:      EdgeSpouseOf,
	EdgeSiblingOf:     EdgeSiblingOf,
	EdgeGrandparentOf: EdgeGrandchildOf,
	EdgeGrandchildOf:  EdgeGrandparentOf,
	EdgeRelativeOf:    EdgeRelativeOf,
	EdgeFriendOf:      EdgeFriendOf,
	EdgeColleagueOf:   EdgeColleagueOf,
	EdgeMentorOf:      EdgeMenteeOf,
	EdgeMenteeOf:      EdgeMentorOf,
	EdgeFanOf:         EdgeIdolOf,
	EdgeIdolOf:        EdgeFanOf,
	EdgeNeighborOf:    EdgeNeighborOf,
	EdgeRoommateOf:    EdgeRoommateOf,
	EdgeClassmateOf:   EdgeClassmateOf,
}

// ReciprocalEdgeType returns the reverse edge type for t.
// RELATIVE_OF is returned for unmapped types.
func ReciprocalEdgeType(t EdgeType) EdgeType {
	if r, ok := reciprocalEdges[t]; ok {
		return r
	}
	return EdgeRelativeOf
}

// ValidEdgeType reports whether t is one of the known edge types. Store
// implementations use this before interpolating the type into a query.
func ValidEdgeType(t EdgeType) bool {
	_, ok := reciprocalEdges[t]
	return ok
}

// genderedLabels holds the {edge type, gender} -> specific label table for
// family edges. Unresolved gender falls back to the generic term.
var genderedLabels = map[EdgeType][3]string{
	// [male, female, neutral]
	EdgeParentOf:      {"father", "mother", "parent"},
	EdgeChildOf:       {"son", "daughter", "child"},
	EdgeSpouseOf:      {"husband", "wife", "spouse"},
	EdgeSiblingOf:     {"brother", "sister", "sibling"},
	EdgeGrandparentOf: {"grandfather", "grandmother", "grandparent"},
	EdgeGrandchildOf:  {"grandson", "granddaughter", "grandchild"},
}

// socialLabels holds the fixed labels for non-family edges.
var socialLabels = map[EdgeType]string{
	EdgeRelativeOf:  "relative",
	EdgeFriendOf:    "friend",
	EdgeColleagueOf: "colleague",
	EdgeMentorOf:    "mentor",
	EdgeMenteeOf:    "mentee",
	EdgeFanOf:       "fan",
	EdgeIdolOf:      "idol",
	EdgeNeighborOf:  "neighbor",
	EdgeRoommateOf:  "roommate",
	EdgeClassmateOf: "classmate",
}

// RoleLabel returns the label for the person holding the role named by
// info. Family roles are refined by the person's gender (falling back to
// the gender the term implies); social roles keep the canonical term, so a
// "boss" stays a boss rather than a generic colleague.
func RoleLabel(info *Info, gender string) string {
	if _, ok := genderedLabels[info.Edge]; ok {
		if gender == "" {
			gender = info.Gender
		}
		return SpecificLabel(info.Edge, gender)
	}
	return info.Term
}

// SpecificLabel returns the gender-resolved human-readable label for an
// edge (father, wife, brother, ...).
func SpecificLabel(t EdgeType, gender string) string {
	if labels, ok := genderedLabels[t]; ok {
		switch gender {
		case "M":
			return labels[0]
		case "F":
			return labels[1]
		default:
			return labels[2]
		}
	}
	if label, ok := socialLabels[t]; ok {
		return label
	}
	return "relative"
}
