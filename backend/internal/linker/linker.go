package linker

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"kincrm/backend/internal/family"
	"kincrm/backend/internal/match"
	"kincrm/backend/internal/model"
	"kincrm/backend/internal/relation"
	"kincrm/backend/internal/store"
	"kincrm/backend/pkg/logger"
)

// MergeRecord documents one resolution decision for the summary.
type MergeRecord struct {
	ExtractedName string            `json:"extracted_name"`
	Action        match.Action      `json:"action"`
	ExistingID    string            `json:"existing_id,omitempty"`
	ExistingName  string            `json:"existing_name,omitempty"`
	Score         float64           `json:"score,omitempty"`
	Reason        string            `json:"reason,omitempty"`
	Candidates    []match.Candidate `json:"candidates,omitempty"`
}

// Summary is the result of processing one extraction batch. Success is false
// only when the batch itself was unusable; per-item store failures are
// recorded in Errors and do not abort the rest of the batch.
type Summary struct {
	Success              bool                           `json:"success"`
	PersonsCreated       int                            `json:"persons_created"`
	PersonsMerged        int                            `json:"persons_merged"`
	RelationshipsCreated int                            `json:"relationships_created"`
	RelationshipsSkipped int                            `json:"relationships_skipped"`
	Relationships        []model.NormalizedRelationship `json:"relationships,omitempty"`
	Merges               []MergeRecord                  `json:"merges,omitempty"`
	FamilyKeys           map[string]string              `json:"family_keys,omitempty"`
	Errors               []string                       `json:"errors,omitempty"`
	Message              string                         `json:"message"`
}

// Linker is the ingestion pipeline: it resolves each extracted person against
// the store (merge or create), assigns family keys, then materializes the
// relationship edges. Persons always resolve before relationships so edges
// only ever reference stored ids.
type Linker struct {
	persons   store.PersonStore
	resolver  *match.DuplicateResolver
	clusterer *family.Clusterer
	builder   *GraphBuilder
	logger    *zap.Logger
}

// New creates a linker. duplicateThreshold is the screening threshold for
// merge candidates, typically stricter than the lookup threshold.
func New(persons store.PersonStore, rels store.RelationshipStore, duplicateThreshold float64) *Linker {
	return &Linker{
		persons:   persons,
		resolver:  match.NewDuplicateResolver(persons, duplicateThreshold),
		clusterer: family.NewClusterer(),
		builder:   NewGraphBuilder(persons, rels),
		logger:    logger.Get(),
	}
}

// ResolveAndLink processes one extraction batch end to end. It never returns
// an error: failures are carried in the summary so callers always get an
// account of what happened to each item.
func (l *Linker) ResolveAndLink(ctx context.Context, batch model.ExtractionBatch) *Summary {
	summary := &Summary{Success: true, FamilyKeys: make(map[string]string)}

	if !batch.Success {
		summary.Success = false
		summary.Message = "extraction failed, nothing stored"
		if batch.Error != "" {
			summary.Errors = append(summary.Errors, batch.Error)
		}
		return summary
	}

	droppedPersons, droppedRels := batch.Sanitize()
	if droppedPersons > 0 || droppedRels > 0 {
		l.logger.Warn("Dropped malformed extraction entries",
			zap.Int("persons", droppedPersons),
			zap.Int("relationships", droppedRels),
		)
	}

	if len(batch.Persons) == 0 {
		summary.Message = "no persons to store"
		return summary
	}

	familyKeys := l.clusterer.Group(batch.Persons, batch.Relationships)
	for name, key := range familyKeys {
		summary.FamilyKeys[name] = key.String()
	}

	// Pass 1: resolve or create every person.
	nameToID := make(map[string]string, len(batch.Persons))
	for _, person := range batch.Persons {
		id, err := l.resolvePerson(ctx, person, summary)
		if err != nil {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("person %q: %v", person.Name, err))
			l.logger.Error("Person resolution failed",
				zap.String("name", person.Name), zap.Error(err))
			continue
		}
		nameToID[strings.ToLower(person.Name)] = id
	}

	// Pass 2: materialize relationship edges between resolved persons.
	for _, rel := range batch.Relationships {
		summary.Relationships = append(summary.Relationships, normalizeRelationship(rel))

		p1, ok1 := l.lookupPerson(ctx, rel.Person1, nameToID)
		p2, ok2 := l.lookupPerson(ctx, rel.Person2, nameToID)
		if !ok1 || !ok2 {
			summary.RelationshipsSkipped++
			l.logger.Debug("Skipping relationship with unresolved person",
				zap.String("person1", rel.Person1),
				zap.String("person2", rel.Person2),
				zap.String("term", rel.RelationTerm),
			)
			continue
		}

		edges, err := l.builder.Build(ctx, rel, *p1, *p2)
		if err != nil {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("relationship %s-%s (%s): %v", rel.Person1, rel.Person2, rel.RelationTerm, err))
			continue
		}
		summary.RelationshipsCreated += len(edges)
	}

	summary.Message = fmt.Sprintf("%d persons created, %d merged, %d relationship edges stored",
		summary.PersonsCreated, summary.PersonsMerged, summary.RelationshipsCreated)
	l.logger.Info("Batch processed",
		zap.Int("created", summary.PersonsCreated),
		zap.Int("merged", summary.PersonsMerged),
		zap.Int("edges", summary.RelationshipsCreated),
		zap.Int("skipped", summary.RelationshipsSkipped),
		zap.Int("errors", len(summary.Errors)),
	)
	return summary
}

// resolvePerson merges the extracted person into an existing record or
// creates a new one, and returns the stored id.
func (l *Linker) resolvePerson(ctx context.Context, person model.ExtractedPerson, summary *Summary) (string, error) {
	candidates, err := l.resolver.FindDuplicates(ctx, person.Name, person.Phone)
	if err != nil {
		return "", err
	}

	decision := match.Decide(candidates)

	if decision.Action == match.ActionAutoMerge {
		existing, err := l.persons.GetByID(ctx, decision.Candidate.PersonID)
		if err != nil {
			return "", err
		}
		merged := mergeInto(*existing, person)
		if err := l.persons.Update(ctx, merged); err != nil {
			return "", err
		}
		summary.PersonsMerged++
		summary.Merges = append(summary.Merges, MergeRecord{
			ExtractedName: person.Name,
			Action:        match.ActionAutoMerge,
			ExistingID:    existing.ID,
			ExistingName:  existing.FullName,
			Score:         decision.Candidate.Score,
			Reason:        decision.Reason,
		})
		l.logger.Info("Merged into existing person",
			zap.String("extracted", person.Name),
			zap.String("existing", existing.FullName),
			zap.Float64("score", decision.Candidate.Score),
		)
		return existing.ID, nil
	}

	// create_new and needs_clarification both store a new record; the
	// latter additionally surfaces its candidates for review.
	rec := model.PersonRecord{
		FullName:   person.Name,
		Gender:     person.Gender,
		Phone:      person.Phone,
		Email:      person.Email,
		City:       person.Location,
		Occupation: person.Occupation,
		Interests:  person.Interests,
		FamilyKey:  summary.FamilyKeys[person.Name],
	}
	id, err := l.persons.Add(ctx, rec)
	if err != nil {
		return "", err
	}
	summary.PersonsCreated++

	if decision.Action == match.ActionNeedsClarification {
		record := MergeRecord{
			ExtractedName: person.Name,
			Action:        match.ActionNeedsClarification,
			Reason:        decision.Reason,
		}
		if len(candidates) > 3 {
			record.Candidates = candidates[:3]
		} else {
			record.Candidates = candidates
		}
		summary.Merges = append(summary.Merges, record)
	}
	return id, nil
}

// lookupPerson resolves a relationship participant name to a stored record,
// preferring ids resolved in this batch and falling back to an exact
// normalized-name scan of the store.
func (l *Linker) lookupPerson(ctx context.Context, name string, nameToID map[string]string) (*model.PersonRecord, bool) {
	if id, ok := nameToID[strings.ToLower(name)]; ok {
		person, err := l.persons.GetByID(ctx, id)
		if err != nil || person == nil {
			return nil, false
		}
		return person, true
	}

	all, err := l.persons.GetAll(ctx)
	if err != nil {
		return nil, false
	}
	normalized := match.NormalizeName(name)
	for i := range all {
		if all[i].IsArchived {
			continue
		}
		if match.NormalizeName(all[i].FullName) == normalized {
			nameToID[strings.ToLower(name)] = all[i].ID
			return &all[i], true
		}
	}
	return nil, false
}

// normalizeRelationship labels one extracted relationship with its canonical
// term and type. Unknown terms stay stored, typed "unknown", and never get a
// derived reciprocal.
func normalizeRelationship(rel model.ExtractedRelationship) model.NormalizedRelationship {
	norm := model.NormalizedRelationship{
		Person1:      rel.Person1,
		Person2:      rel.Person2,
		RelationTerm: rel.RelationTerm,
		RelationType: string(relation.TypeUnknown),
	}
	if info := relation.Normalize(rel.RelationTerm); info != nil {
		norm.NormalizedTerm = info.Term
		norm.RelationType = string(info.Type)
		norm.IsReciprocal = true
	}
	return norm
}

// mergeInto fills blank fields of the existing record from the extracted
// person. Existing values always win; a merge never destroys data.
func mergeInto(existing model.PersonRecord, person model.ExtractedPerson) model.PersonRecord {
	if existing.Gender == "" {
		existing.Gender = person.Gender
	}
	if existing.Phone == "" {
		existing.Phone = person.Phone
	}
	if existing.Email == "" {
		existing.Email = person.Email
	}
	if existing.City == "" {
		existing.City = person.Location
	}
	if existing.Occupation == "" {
		existing.Occupation = person.Occupation
	}
	if existing.Interests == "" {
		existing.Interests = person.Interests
	}
	return existing
}
