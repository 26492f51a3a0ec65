package relation

import "strings"

// terms is the multilingual relationship lookup table. It is immutable
// configuration: initialized once, read-only afterwards.
var terms = map[string]Info{
	// ENGLISH - family
	"father":        {Term: "father", Type: TypeParent, Gender: "M", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"mother":        {Term: "mother", Type: TypeParent, Gender: "F", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"dad":           {Term: "father", Type: TypeParent, Gender: "M", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"mom":           {Term: "mother", Type: TypeParent, Gender: "F", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"parent":        {Term: "parent", Type: TypeParent, Gender: "", ImpliesMarried: false, Reciprocal: "child", Edge: EdgeParentOf},
	"son":           {Term: "son", Type: TypeChild, Gender: "M", Reciprocal: "parent", Edge: EdgeChildOf},
	"daughter":      {Term: "daughter", Type: TypeChild, Gender: "F", Reciprocal: "parent", Edge: EdgeChildOf},
	"child":         {Term: "child", Type: TypeChild, Gender: "", Reciprocal: "parent", Edge: EdgeChildOf},
	"husband":       {Term: "husband", Type: TypeSpouse, Gender: "M", ImpliesMarried: true, Reciprocal: "wife", Edge: EdgeSpouseOf},
	"wife":          {Term: "wife", Type: TypeSpouse, Gender: "F", ImpliesMarried: true, Reciprocal: "husband", Edge: EdgeSpouseOf},
	"spouse":        {Term: "spouse", Type: TypeSpouse, Gender: "", ImpliesMarried: true, Reciprocal: "spouse", Edge: EdgeSpouseOf},
	"brother":       {Term: "brother", Type: TypeSibling, Gender: "M", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"sister":        {Term: "sister", Type: TypeSibling, Gender: "F", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"sibling":       {Term: "sibling", Type: TypeSibling, Gender: "", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"grandfather":   {Term: "grandfather", Type: TypeGrandparent, Gender: "M", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},
	"grandmother":   {Term: "grandmother", Type: TypeGrandparent, Gender: "F", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},
	"grandson":      {Term: "grandson", Type: TypeGrandchild, Gender: "M", Reciprocal: "grandparent", Edge: EdgeGrandchildOf},
	"granddaughter": {Term: "granddaughter", Type: TypeGrandchild, Gender: "F", Reciprocal: "grandparent", Edge: EdgeGrandchildOf},
	"grandchild":    {Term: "grandchild", Type: TypeGrandchild, Gender: "", Reciprocal: "grandparent", Edge: EdgeGrandchildOf},
	"uncle":         {Term: "uncle", Type: TypeExtended, Gender: "M", Reciprocal: "nephew_niece", Edge: EdgeRelativeOf},
	"aunt":          {Term: "aunt", Type: TypeExtended, Gender: "F", Reciprocal: "nephew_niece", Edge: EdgeRelativeOf},
	"nephew":        {Term: "nephew", Type: TypeExtended, Gender: "M", Reciprocal: "uncle_aunt", Edge: EdgeRelativeOf},
	"niece":         {Term: "niece", Type: TypeExtended, Gender: "F", Reciprocal: "uncle_aunt", Edge: EdgeRelativeOf},
	"cousin":        {Term: "cousin", Type: TypeExtended, Gender: "", Reciprocal: "cousin", Edge: EdgeRelativeOf},

	// ENGLISH - social
	"friend":    {Term: "friend", Type: TypeFriend, Reciprocal: "friend", Edge: EdgeFriendOf},
	"colleague": {Term: "colleague", Type: TypeColleague, Reciprocal: "colleague", Edge: EdgeColleagueOf},
	"coworker":  {Term: "colleague", Type: TypeColleague, Reciprocal: "colleague", Edge: EdgeColleagueOf},
	"boss":      {Term: "boss", Type: TypeColleague, Reciprocal: "employee", Edge: EdgeColleagueOf},
	"manager":   {Term: "boss", Type: TypeColleague, Reciprocal: "employee", Edge: EdgeColleagueOf},
	"employee":  {Term: "employee", Type: TypeColleague, Reciprocal: "boss", Edge: EdgeColleagueOf},
	"mentor":    {Term: "mentor", Type: TypeMentor, Reciprocal: "mentee", Edge: EdgeMentorOf},
	"teacher":   {Term: "mentor", Type: TypeMentor, Reciprocal: "mentee", Edge: EdgeMentorOf},
	"guru":      {Term: "mentor", Type: TypeMentor, Reciprocal: "mentee", Edge: EdgeMentorOf},
	"mentee":    {Term: "mentee", Type: TypeMentor, Reciprocal: "mentor", Edge: EdgeMenteeOf},
	"student":   {Term: "mentee", Type: TypeMentor, Reciprocal: "mentor", Edge: EdgeMenteeOf},
	"fan":       {Term: "fan", Type: TypeFan, Reciprocal: "idol", Edge: EdgeFanOf},
	"follower":  {Term: "fan", Type: TypeFan, Reciprocal: "idol", Edge: EdgeFanOf},
	"admirer":   {Term: "fan", Type: TypeFan, Reciprocal: "idol", Edge: EdgeFanOf},
	"neighbor":  {Term: "neighbor", Type: TypeNeighbor, Reciprocal: "neighbor", Edge: EdgeNeighborOf},
	"neighbour": {Term: "neighbor", Type: TypeNeighbor, Reciprocal: "neighbor", Edge: EdgeNeighborOf},
	"roommate":  {Term: "roommate", Type: TypeRoommate, Reciprocal: "roommate", Edge: EdgeRoommateOf},
	"classmate": {Term: "classmate", Type: TypeClassmate, Reciprocal: "classmate", Edge: EdgeClassmateOf},

	// HINDI
	"pita":   {Term: "father", Type: TypeParent, Gender: "M", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"mata":   {Term: "mother", Type: TypeParent, Gender: "F", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"maa":    {Term: "mother", Type: TypeParent, Gender: "F", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"beta":   {Term: "son", Type: TypeChild, Gender: "M", Reciprocal: "parent", Edge: EdgeChildOf},
	"beti":   {Term: "daughter", Type: TypeChild, Gender: "F", Reciprocal: "parent", Edge: EdgeChildOf},
	"bhai":   {Term: "brother", Type: TypeSibling, Gender: "M", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"behen":  {Term: "sister", Type: TypeSibling, Gender: "F", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"pati":   {Term: "husband", Type: TypeSpouse, Gender: "M", ImpliesMarried: true, Reciprocal: "wife", Edge: EdgeSpouseOf},
	"patni":  {Term: "wife", Type: TypeSpouse, Gender: "F", ImpliesMarried: true, Reciprocal: "husband", Edge: EdgeSpouseOf},
	"dadi":   {Term: "grandmother", Type: TypeGrandparent, Gender: "F", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},
	"dada":   {Term: "grandfather", Type: TypeGrandparent, Gender: "M", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},
	"chacha": {Term: "uncle", Type: TypeExtended, Gender: "M", ImpliesMarried: true, Reciprocal: "nephew_niece", Edge: EdgeRelativeOf},

	// MARATHI
	"baba":  {Term: "father", Type: TypeParent, Gender: "M", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"aai":   {Term: "mother", Type: TypeParent, Gender: "F", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"bhau":  {Term: "brother", Type: TypeSibling, Gender: "M", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"bhaau": {Term: "brother", Type: TypeSibling, Gender: "M", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"bahin": {Term: "sister", Type: TypeSibling, Gender: "F", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"mulga": {Term: "son", Type: TypeChild, Gender: "M", Reciprocal: "parent", Edge: EdgeChildOf},
	"mulgi": {Term: "daughter", Type: TypeChild, Gender: "F", Reciprocal: "parent", Edge: EdgeChildOf},
	"navra": {Term: "husband", Type: TypeSpouse, Gender: "M", ImpliesMarried: true, Reciprocal: "wife", Edge: EdgeSpouseOf},
	"bayko": {Term: "wife", Type: TypeSpouse, Gender: "F", ImpliesMarried: true, Reciprocal: "husband", Edge: EdgeSpouseOf},
	"aaji":  {Term: "grandmother", Type: TypeGrandparent, Gender: "F", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},
	"ajoba": {Term: "grandfather", Type: TypeGrandparent, Gender: "M", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},
	"kaka":  {Term: "uncle", Type: TypeExtended, Gender: "M", ImpliesMarried: true, Reciprocal: "nephew_niece", Edge: EdgeRelativeOf},
	"kaku":  {Term: "aunt", Type: TypeExtended, Gender: "F", ImpliesMarried: true, Reciprocal: "nephew_niece", Edge: EdgeRelativeOf},

	// TAMIL
	"appa":    {Term: "father", Type: TypeParent, Gender: "M", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"amma":    {Term: "mother", Type: TypeParent, Gender: "F", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"anna":    {Term: "brother", Type: TypeSibling, Gender: "M", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"thambi":  {Term: "brother", Type: TypeSibling, Gender: "M", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"akka":    {Term: "sister", Type: TypeSibling, Gender: "F", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"thangai": {Term: "sister", Type: TypeSibling, Gender: "F", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"paati":   {Term: "grandmother", Type: TypeGrandparent, Gender: "F", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},
	"thatha":  {Term: "grandfather", Type: TypeGrandparent, Gender: "M", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},

	// TELUGU
	"nanna":   {Term: "father", Type: TypeParent, Gender: "M", ImpliesMarried: true, Reciprocal: "child", Edge: EdgeParentOf},
	"tammudu": {Term: "brother", Type: TypeSibling, Gender: "M", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"chelli":  {Term: "sister", Type: TypeSibling, Gender: "F", Reciprocal: "sibling", Edge: EdgeSiblingOf},
	"ammamma": {Term: "grandmother", Type: TypeGrandparent, Gender: "F", ImpliesMarried: true, Reciprocal: "grandchild", Edge: EdgeGrandparentOf},
	"babai":   {Term: "uncle", Type: TypeExtended, Gender: "M", ImpliesMarried: true, Reciprocal: "nephew_niece", Edge: EdgeRelativeOf},
}

// Normalize looks up a free-text relationship term. Input is
// case-insensitive and whitespace-trimmed. Returns nil for unknown terms;
// the caller must treat the relationship as TypeUnknown and still store it
// without inferring a reciprocal.
func Normalize(term string) *Info {
	if term == "" {
		return nil
	}
	key := strings.ToLower(strings.TrimSpace(term))
	// "fan of", "friend of" and similar phrasings
	key = strings.TrimSuffix(key, " of")
	if info, ok := terms[key]; ok {
		return &info
	}
	return nil
}

// IsKnown reports whether the term exists in the table.
func IsKnown(term string) bool {
	return Normalize(term) != nil
}

// ImpliedGender returns the gender a term implies for the person holding the
// role, or "" if neutral or unknown.
func ImpliedGender(term string) string {
	if info := Normalize(term); info != nil {
		return info.Gender
	}
	return ""
}

// Reciprocal returns the term for the role person1 plays when person2 is the
// <term> of person1. For parent/child/sibling/grandparent terms the result
// depends on the other person's gender; all other types use the static
// reciprocal from the table. Unknown terms fall back to "relative".
func Reciprocal(term, otherGender string) string {
	info := Normalize(term)
	if info == nil {
		return "relative"
	}

	switch info.Type {
	case TypeParent:
		return genderedTerm(otherGender, "son", "daughter", "child")
	case TypeChild:
		return genderedTerm(otherGender, "father", "mother", "parent")
	case TypeSibling:
		return genderedTerm(otherGender, "brother", "sister", "sibling")
	case TypeGrandparent:
		return genderedTerm(otherGender, "grandson", "granddaughter", "grandchild")
	case TypeGrandchild:
		return genderedTerm(otherGender, "grandfather", "grandmother", "grandparent")
	}
	return info.Reciprocal
}

func genderedTerm(gender, male, female, neutral string) string {
	switch gender {
	case "M":
		return male
	case "F":
		return female
	default:
		return neutral
	}
}
