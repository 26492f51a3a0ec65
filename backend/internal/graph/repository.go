package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"kincrm/backend/pkg/config"
	kerrors "kincrm/backend/pkg/errors"
	"kincrm/backend/pkg/logger"
)

// Repository handles all Neo4j database operations. Person and relationship
// store methods hang off it so one driver serves both.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a repository over an existing driver.
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Get(),
	}
}

// Connect creates a driver from config, verifies connectivity and returns a
// repository.
func Connect(ctx context.Context, cfg *config.Config) (*Repository, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		return nil, kerrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, kerrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}
	return NewRepository(driver), nil
}

// Close closes the Neo4j driver connection.
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

// EnsureConstraints creates the uniqueness constraint on Person.id.
// Idempotent; call once at startup.
func (r *Repository) EnsureConstraints(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `CREATE CONSTRAINT person_id IF NOT EXISTS FOR (p:Person) REQUIRE p.id IS UNIQUE`
	if _, err := session.Run(ctx, query, nil); err != nil {
		return fmt.Errorf("failed to create constraints: %w", err)
	}
	r.logger.Info("Graph constraints ensured")
	return nil
}

// Wipe deletes every Person node and its edges. Used by the seed script.
func (r *Repository) Wipe(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, `MATCH (p:Person) DETACH DELETE p`, nil); err != nil {
		return fmt.Errorf("failed to wipe persons: %w", err)
	}
	r.logger.Warn("All person nodes deleted")
	return nil
}
