package family

import (
	"strings"

	"kincrm/backend/internal/model"
	"kincrm/backend/pkg/logger"
	"go.uber.org/zap"
)

// unknownCity is the key component used when a person has no location.
const unknownCity = "Unknown"

// Key identifies one household for grouping and reporting. Keys are
// recomputed per extraction batch, not stored identifiers.
type Key struct {
	Surname string
	City    string
}

// String renders the key as SURNAME-CITY (uppercased), e.g. KAWTHALKAR-PUNE.
func (k Key) String() string {
	return strings.ToUpper(k.Surname) + "-" + strings.ToUpper(k.City)
}

// Clusterer groups a batch of extracted persons into family units. Grouping
// is driven by direct relational connectivity to the speaker, with
// (surname, city) as the fallback. Any stated relationship to the speaker -
// including non-family ones like "colleague" - pulls a person into the
// speaker's household; that is intentional, documented behavior.
type Clusterer struct {
	logger *zap.Logger
}

// NewClusterer creates a family clusterer.
func NewClusterer() *Clusterer {
	return &Clusterer{logger: logger.Get()}
}

// Group assigns each person a family key. Persons connected to the speaker
// by any relationship share the speaker's key; everyone else is keyed by
// their own surname and city.
func (c *Clusterer) Group(persons []model.ExtractedPerson, relationships []model.ExtractedRelationship) map[string]Key {
	keys := make(map[string]Key, len(persons))

	speaker, speakerKey := findSpeaker(persons)

	// Undirected adjacency over case-insensitive name pairs.
	connections := make(map[string]map[string]bool)
	for _, rel := range relationships {
		p1 := strings.ToLower(strings.TrimSpace(rel.Person1))
		p2 := strings.ToLower(strings.TrimSpace(rel.Person2))
		if p1 == "" || p2 == "" {
			continue
		}
		if connections[p1] == nil {
			connections[p1] = make(map[string]bool)
		}
		if connections[p2] == nil {
			connections[p2] = make(map[string]bool)
		}
		connections[p1][p2] = true
		connections[p2][p1] = true
	}

	for _, person := range persons {
		name := strings.TrimSpace(person.Name)
		if name == "" {
			continue
		}

		if speaker != "" {
			lower := strings.ToLower(name)
			if lower == speaker || connections[speaker][lower] {
				keys[name] = speakerKey
				continue
			}
		}

		keys[name] = ownKey(person)
	}

	c.logger.Debug("Family grouping computed",
		zap.Int("persons", len(persons)),
		zap.String("speaker_key", speakerKey.String()),
	)
	return keys
}

// GroupBySurname is the secondary strategy: pure (surname, city) grouping
// with no relationship connectivity. Used when a batch carries no speaker.
func (c *Clusterer) GroupBySurname(persons []model.ExtractedPerson) map[string]Key {
	keys := make(map[string]Key, len(persons))
	for _, person := range persons {
		name := strings.TrimSpace(person.Name)
		if name == "" {
			continue
		}
		keys[name] = ownKey(person)
	}
	return keys
}

func findSpeaker(persons []model.ExtractedPerson) (lowerName string, key Key) {
	for _, person := range persons {
		if !person.IsSpeaker {
			continue
		}
		name := strings.TrimSpace(person.Name)
		if name == "" {
			continue
		}
		return strings.ToLower(name), ownKey(person)
	}
	return "", Key{}
}

func ownKey(person model.ExtractedPerson) Key {
	surname := "Unknown"
	if tokens := strings.Fields(person.Name); len(tokens) > 0 {
		surname = tokens[len(tokens)-1]
	}
	city := strings.TrimSpace(person.Location)
	if city == "" {
		city = unknownCity
	}
	return Key{Surname: surname, City: city}
}
