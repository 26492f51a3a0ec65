package store

import (
	"context"

	"kincrm/backend/internal/model"
)

// PersonStore is the external person persistence boundary. The resolution
// core pulls the full collection once per lookup and never caches across
// calls; locking for concurrent writers is the implementation's concern.
type PersonStore interface {
	GetAll(ctx context.Context) ([]model.PersonRecord, error)
	GetByID(ctx context.Context, id string) (*model.PersonRecord, error)
	Add(ctx context.Context, rec model.PersonRecord) (string, error)
	Update(ctx context.Context, rec model.PersonRecord) error
}

// RelationshipStore is the external relationship persistence boundary.
// AddEdge reports false when an equivalent (a, b, type) edge already exists.
type RelationshipStore interface {
	AddEdge(ctx context.Context, edge model.GraphEdge) (bool, error)
	GetEdges(ctx context.Context, personID string) ([]model.GraphEdge, error)
}
