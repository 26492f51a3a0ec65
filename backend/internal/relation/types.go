package relation

// Type is the abstract category of a relationship term.
type Type string

const (
	TypeParent      Type = "parent"
	TypeChild       Type = "child"
	TypeSpouse      Type = "spouse"
	TypeSibling     Type = "sibling"
	TypeGrandparent Type = "grandparent"
	TypeGrandchild  Type = "grandchild"
	TypeExtended    Type = "extended"
	TypeFriend      Type = "friend_of"
	TypeColleague   Type = "colleague"
	TypeMentor      Type = "mentor"
	TypeFan         Type = "fan_of"
	TypeNeighbor    Type = "neighbor"
	TypeRoommate    Type = "roommate"
	TypeClassmate   Type = "classmate"
	TypeUnknown     Type = "unknown"
)

// EdgeType is the graph relationship type between two person nodes.
type EdgeType string

const (
	EdgeParentOf      EdgeType = "PARENT_OF"
	EdgeChildOf       EdgeType = "CHILD_OF"
	EdgeSpouseOf      EdgeType = "SPOUSE_OF"
	EdgeSiblingOf     EdgeType = "SIBLING_OF"
	EdgeGrandparentOf EdgeType = "GRANDPARENT_OF"
	EdgeGrandchildOf  EdgeType = "GRANDCHILD_OF"
	EdgeRelativeOf    EdgeType = "RELATIVE_OF"
	EdgeFriendOf      EdgeType = "FRIEND_OF"
	EdgeColleagueOf   EdgeType = "COLLEAGUE_OF"
	EdgeMentorOf      EdgeType = "MENTOR_OF"
	EdgeMenteeOf      EdgeType = "MENTEE_OF"
	EdgeFanOf         EdgeType = "FAN_OF"
	EdgeIdolOf        EdgeType = "IDOL_OF"
	EdgeNeighborOf    EdgeType = "NEIGHBOR_OF"
	EdgeRoommateOf    EdgeType = "ROOMMATE_OF"
	EdgeClassmateOf   EdgeType = "CLASSMATE_OF"
)

// Info is the normalized form of a free-text relationship term. Term names
// the role person2 plays for person1, Reciprocal the role person1 plays for
// person2 (subject to gender refinement, see Reciprocal()).
type Info struct {
	Term           string // canonical English term
	Type           Type
	Gender         string // implied gender of the person holding the role, "" if neutral
	ImpliesMarried bool
	Reciprocal     string   // static reciprocal term
	Edge           EdgeType // edge type for the person holding the role
}
