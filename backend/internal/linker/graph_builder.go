package linker

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"kincrm/backend/internal/model"
	"kincrm/backend/internal/relation"
	"kincrm/backend/internal/store"
	"kincrm/backend/pkg/logger"
)

// GraphBuilder materializes extracted relationship statements as directed
// edges. Known terms produce a forward edge plus an automatic reciprocal
// edge; unknown terms produce a single RELATIVE_OF edge carrying the raw
// term, with no reciprocal guessed.
type GraphBuilder struct {
	persons store.PersonStore
	rels    store.RelationshipStore
	logger  *zap.Logger
}

// NewGraphBuilder creates a builder over the given stores.
func NewGraphBuilder(persons store.PersonStore, rels store.RelationshipStore) *GraphBuilder {
	return &GraphBuilder{
		persons: persons,
		rels:    rels,
		logger:  logger.Get(),
	}
}

// Build stores the edges for one relationship statement between two resolved
// persons. The relation term names the role p2 plays for p1 ("my wife is
// Priya": p1 speaker, p2 Priya, term wife). Returns the edges actually
// created; edges that already exist are silently skipped.
func (b *GraphBuilder) Build(ctx context.Context, rel model.ExtractedRelationship, p1, p2 model.PersonRecord) ([]model.GraphEdge, error) {
	info := relation.Normalize(rel.RelationTerm)
	if info == nil {
		edge := model.GraphEdge{
			PersonAID: p1.ID,
			PersonBID: p2.ID,
			Type:      string(relation.EdgeRelativeOf),
			Specific:  strings.ToLower(strings.TrimSpace(rel.RelationTerm)),
		}
		created, err := b.rels.AddEdge(ctx, edge)
		if err != nil {
			return nil, err
		}
		b.logger.Debug("Unknown relation term stored as generic relative",
			zap.String("term", rel.RelationTerm),
			zap.String("person1", p1.FullName),
			zap.String("person2", p2.FullName),
		)
		if !created {
			return nil, nil
		}
		return []model.GraphEdge{edge}, nil
	}

	// p2 holds the named role; p1 holds its reciprocal.
	forward := model.GraphEdge{
		PersonAID: p1.ID,
		PersonBID: p2.ID,
		Type:      string(relation.ReciprocalEdgeType(info.Edge)),
		Specific:  relation.Reciprocal(info.Term, p1.Gender),
	}
	reverse := model.GraphEdge{
		PersonAID:    p2.ID,
		PersonBID:    p1.ID,
		Type:         string(info.Edge),
		Specific:     relation.RoleLabel(info, p2.Gender),
		IsReciprocal: true,
	}

	var stored []model.GraphEdge
	for _, edge := range []model.GraphEdge{forward, reverse} {
		created, err := b.rels.AddEdge(ctx, edge)
		if err != nil {
			return stored, err
		}
		if created {
			stored = append(stored, edge)
		}
	}

	// Only a spouse statement marries both parties to each other. Terms
	// like "father" imply the holder is married, but not to person1.
	if info.Type == relation.TypeSpouse {
		if err := b.markMarried(ctx, p1, p2); err != nil {
			return stored, err
		}
	}

	return stored, nil
}

// markMarried sets marital status on both spouses. Existing non-empty
// statuses other than "Married" are overwritten; a spouse edge is the
// strongest marital signal we get.
func (b *GraphBuilder) markMarried(ctx context.Context, p1, p2 model.PersonRecord) error {
	for _, person := range []model.PersonRecord{p1, p2} {
		if person.MaritalStatus == "Married" {
			continue
		}
		person.MaritalStatus = "Married"
		if err := b.persons.Update(ctx, person); err != nil {
			return err
		}
	}
	return nil
}
