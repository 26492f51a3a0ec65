package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"kincrm/backend/internal/model"
	kerrors "kincrm/backend/pkg/errors"
)

// These tests require a running Neo4j instance at bolt://localhost:7687
// (neo4j/password) and are skipped in short mode or when it is unreachable.

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	driver, err := neo4j.NewDriverWithContext("bolt://localhost:7687", neo4j.BasicAuth("neo4j", "password", ""))
	if err != nil {
		t.Skipf("Neo4j driver unavailable: %v", err)
	}
	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		driver.Close(context.Background())
		t.Skipf("Neo4j not reachable: %v", err)
	}
	return NewRepository(driver)
}

func cleanupPerson(t *testing.T, repo *Repository, id string) {
	t.Helper()
	ctx := context.Background()
	session := repo.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)
	_, _ = session.Run(ctx, "MATCH (p:Person {id: $id}) DETACH DELETE p", map[string]interface{}{"id": id})
}

func TestRepository_PersonRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	defer repo.Close()
	ctx := context.Background()

	rec := model.PersonRecord{
		FullName: "Test Person " + time.Now().Format("20060102150405"),
		Gender:   "F",
		Phone:    "+91 98765 00000",
		City:     "Pune",
	}

	id, err := repo.Add(ctx, rec)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	defer cleanupPerson(t, repo, id)

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.FullName != rec.FullName || got.Gender != "F" || got.City != "Pune" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	got.MaritalStatus = "Married"
	if err := repo.Update(ctx, *got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	updated, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID after update failed: %v", err)
	}
	if updated.MaritalStatus != "Married" {
		t.Errorf("marital status = %q, want Married", updated.MaritalStatus)
	}
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepository(t)
	defer repo.Close()

	_, err := repo.GetByID(context.Background(), "no-such-person")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	var notFound *kerrors.ErrPersonNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("error type = %T, want ErrPersonNotFound", err)
	}
}

func TestRepository_AddEdge(t *testing.T) {
	repo := newTestRepository(t)
	defer repo.Close()
	ctx := context.Background()

	stamp := time.Now().Format("20060102150405")
	aID, err := repo.Add(ctx, model.PersonRecord{FullName: "Edge A " + stamp})
	if err != nil {
		t.Fatalf("Add A failed: %v", err)
	}
	defer cleanupPerson(t, repo, aID)
	bID, err := repo.Add(ctx, model.PersonRecord{FullName: "Edge B " + stamp})
	if err != nil {
		t.Fatalf("Add B failed: %v", err)
	}
	defer cleanupPerson(t, repo, bID)

	edge := model.GraphEdge{PersonAID: aID, PersonBID: bID, Type: "SPOUSE_OF", Specific: "wife"}
	created, err := repo.AddEdge(ctx, edge)
	if err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if !created {
		t.Error("first AddEdge should report creation")
	}

	created, err = repo.AddEdge(ctx, edge)
	if err != nil {
		t.Fatalf("second AddEdge failed: %v", err)
	}
	if created {
		t.Error("duplicate AddEdge should not report creation")
	}

	edges, err := repo.GetEdges(ctx, aID)
	if err != nil {
		t.Fatalf("GetEdges failed: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	if edges[0].Type != "SPOUSE_OF" || edges[0].Specific != "wife" {
		t.Errorf("edge = %+v", edges[0])
	}
}

func TestRepository_AddEdge_RejectsUnknownType(t *testing.T) {
	repo := newTestRepository(t)
	defer repo.Close()

	_, err := repo.AddEdge(context.Background(), model.GraphEdge{
		PersonAID: "a", PersonBID: "b", Type: "]; DETACH DELETE n //",
	})
	if err == nil {
		t.Fatal("arbitrary relationship types must be rejected")
	}
}
