package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"kincrm/backend/internal/model"
	"kincrm/backend/internal/relation"
)

// AddEdge stores one directed relationship edge, reporting whether it was
// newly created. Relationship types cannot be parameterized in Cypher, so the
// type is interpolated after validation against the known edge type set.
func (r *Repository) AddEdge(ctx context.Context, edge model.GraphEdge) (bool, error) {
	if !relation.ValidEdgeType(relation.EdgeType(edge.Type)) {
		return false, fmt.Errorf("invalid edge type %q", edge.Type)
	}

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := fmt.Sprintf(`
		MATCH (a:Person {id: $aID})
		MATCH (b:Person {id: $bID})
		MERGE (a)-[r:%s]->(b)
		ON CREATE SET r.specific = $specific,
		              r.is_reciprocal = $isReciprocal,
		              r.created_at = datetime(),
		              r.was_created = true
		WITH r, coalesce(r.was_created, false) as created
		REMOVE r.was_created
		RETURN created
	`, edge.Type)

	result, err := session.Run(ctx, query, map[string]interface{}{
		"aID":          edge.PersonAID,
		"bID":          edge.PersonBID,
		"specific":     edge.Specific,
		"isReciprocal": edge.IsReciprocal,
	})
	if err != nil {
		return false, fmt.Errorf("failed to store edge: %w", err)
	}

	record, err := result.Single(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to verify edge creation: %w", err)
	}
	created := getBool(record, "created", false)
	if created {
		r.logger.Debug("Edge created",
			zap.String("type", edge.Type),
			zap.String("specific", edge.Specific),
		)
	}
	return created, nil
}

// GetEdges returns all outgoing relationship edges for a person.
func (r *Repository) GetEdges(ctx context.Context, personID string) ([]model.GraphEdge, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (a:Person {id: $id})-[r]->(b:Person)
		RETURN a.id as a_id, b.id as b_id, type(r) as type,
		       r.specific as specific, r.is_reciprocal as is_reciprocal
		ORDER BY type(r), b.full_name
	`

	result, err := session.Run(ctx, query, map[string]interface{}{"id": personID})
	if err != nil {
		return nil, fmt.Errorf("failed to list edges: %w", err)
	}

	var edges []model.GraphEdge
	for result.Next(ctx) {
		record := result.Record()
		edges = append(edges, model.GraphEdge{
			PersonAID:    getString(record, "a_id", ""),
			PersonBID:    getString(record, "b_id", ""),
			Type:         getString(record, "type", ""),
			Specific:     getString(record, "specific", ""),
			IsReciprocal: getBool(record, "is_reciprocal", false),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge records: %w", err)
	}
	return edges, nil
}
