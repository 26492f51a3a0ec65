package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"kincrm/backend/internal/model"
)

// MemoryPersonStore is an in-memory PersonStore. It backs tests and
// single-process deployments at CRM scale (thousands of persons).
type MemoryPersonStore struct {
	mu      sync.RWMutex
	persons map[string]model.PersonRecord
	order   []string // insertion order, keeps GetAll deterministic
}

// NewMemoryPersonStore creates an empty in-memory person store.
func NewMemoryPersonStore() *MemoryPersonStore {
	return &MemoryPersonStore{persons: make(map[string]model.PersonRecord)}
}

// GetAll returns all person records in insertion order.
func (s *MemoryPersonStore) GetAll(ctx context.Context) ([]model.PersonRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PersonRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.persons[id])
	}
	return out, nil
}

// GetByID returns the person with the given id.
func (s *MemoryPersonStore) GetByID(ctx context.Context, id string) (*model.PersonRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.persons[id]
	if !ok {
		return nil, fmt.Errorf("person not found: %s", id)
	}
	return &rec, nil
}

// Add stores a new person record, assigning an id when none is set.
func (s *MemoryPersonStore) Add(ctx context.Context, rec model.PersonRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if _, exists := s.persons[rec.ID]; !exists {
		s.order = append(s.order, rec.ID)
	}
	s.persons[rec.ID] = rec
	return rec.ID, nil
}

// Update replaces the record with the same id.
func (s *MemoryPersonStore) Update(ctx context.Context, rec model.PersonRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.persons[rec.ID]; !ok {
		return fmt.Errorf("person not found: %s", rec.ID)
	}
	s.persons[rec.ID] = rec
	return nil
}

// MemoryRelationshipStore is an in-memory RelationshipStore.
type MemoryRelationshipStore struct {
	mu    sync.RWMutex
	edges []model.GraphEdge
	seen  map[string]bool
}

// NewMemoryRelationshipStore creates an empty in-memory relationship store.
func NewMemoryRelationshipStore() *MemoryRelationshipStore {
	return &MemoryRelationshipStore{seen: make(map[string]bool)}
}

// AddEdge inserts an edge unless an equivalent (a, b, type) edge exists.
func (s *MemoryRelationshipStore) AddEdge(ctx context.Context, edge model.GraphEdge) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey(edge.PersonAID, edge.PersonBID, edge.Type)
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	s.edges = append(s.edges, edge)
	return true, nil
}

// GetEdges returns all edges where the person is either endpoint.
func (s *MemoryRelationshipStore) GetEdges(ctx context.Context, personID string) ([]model.GraphEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.GraphEdge
	for _, e := range s.edges {
		if e.PersonAID == personID || e.PersonBID == personID {
			out = append(out, e)
		}
	}
	return out, nil
}

func edgeKey(a, b, edgeType string) string {
	return strings.ToLower(a) + "|" + strings.ToLower(b) + "|" + strings.ToLower(edgeType)
}
