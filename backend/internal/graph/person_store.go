package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"kincrm/backend/internal/model"
	kerrors "kincrm/backend/pkg/errors"
)

// GetAll returns every person node, archived ones included; callers filter.
func (r *Repository) GetAll(ctx context.Context) ([]model.PersonRecord, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (p:Person)
		RETURN p.id as id, p.full_name as full_name, p.gender as gender,
		       p.phone as phone, p.email as email, p.city as city,
		       p.occupation as occupation, p.interests as interests,
		       p.marital_status as marital_status, p.family_key as family_key,
		       p.is_archived as is_archived
		ORDER BY p.created_at
	`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	var persons []model.PersonRecord
	for result.Next(ctx) {
		persons = append(persons, recordToPerson(result.Record()))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read person records: %w", err)
	}
	return persons, nil
}

// GetByID returns one person by id, or ErrPersonNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*model.PersonRecord, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (p:Person {id: $id})
		RETURN p.id as id, p.full_name as full_name, p.gender as gender,
		       p.phone as phone, p.email as email, p.city as city,
		       p.occupation as occupation, p.interests as interests,
		       p.marital_status as marital_status, p.family_key as family_key,
		       p.is_archived as is_archived
	`

	result, err := session.Run(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch person: %w", err)
	}
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to read person record: %w", err)
		}
		return nil, kerrors.NewPersonNotFound(id)
	}
	person := recordToPerson(result.Record())
	return &person, nil
}

// Add stores a new person node and returns its id. A blank id gets a fresh
// UUID.
func (r *Repository) Add(ctx context.Context, rec model.PersonRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		CREATE (p:Person {
			id: $id,
			full_name: $fullName,
			gender: $gender,
			phone: $phone,
			email: $email,
			city: $city,
			occupation: $occupation,
			interests: $interests,
			marital_status: $maritalStatus,
			family_key: $familyKey,
			is_archived: false,
			created_at: datetime()
		})
		RETURN p.id as id
	`

	result, err := session.Run(ctx, query, personParams(rec))
	if err != nil {
		return "", fmt.Errorf("failed to create person: %w", err)
	}
	if _, err := result.Single(ctx); err != nil {
		return "", fmt.Errorf("failed to verify person creation: %w", err)
	}

	r.logger.Info("Person created",
		zap.String("id", rec.ID),
		zap.String("name", rec.FullName),
	)
	return rec.ID, nil
}

// Update overwrites the mutable properties of an existing person node.
func (r *Repository) Update(ctx context.Context, rec model.PersonRecord) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MATCH (p:Person {id: $id})
		SET p.full_name = $fullName,
		    p.gender = $gender,
		    p.phone = $phone,
		    p.email = $email,
		    p.city = $city,
		    p.occupation = $occupation,
		    p.interests = $interests,
		    p.marital_status = $maritalStatus,
		    p.family_key = $familyKey,
		    p.is_archived = $isArchived,
		    p.updated_at = datetime()
		RETURN p.id as id
	`

	params := personParams(rec)
	params["isArchived"] = rec.IsArchived
	result, err := session.Run(ctx, query, params)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	if _, err := result.Single(ctx); err != nil {
		return kerrors.NewPersonNotFound(rec.ID)
	}
	return nil
}

func personParams(rec model.PersonRecord) map[string]interface{} {
	return map[string]interface{}{
		"id":            rec.ID,
		"fullName":      rec.FullName,
		"gender":        rec.Gender,
		"phone":         rec.Phone,
		"email":         rec.Email,
		"city":          rec.City,
		"occupation":    rec.Occupation,
		"interests":     rec.Interests,
		"maritalStatus": rec.MaritalStatus,
		"familyKey":     rec.FamilyKey,
	}
}

func recordToPerson(record *neo4j.Record) model.PersonRecord {
	return model.PersonRecord{
		ID:            getString(record, "id", ""),
		FullName:      getString(record, "full_name", ""),
		Gender:        getString(record, "gender", ""),
		Phone:         getString(record, "phone", ""),
		Email:         getString(record, "email", ""),
		City:          getString(record, "city", ""),
		Occupation:    getString(record, "occupation", ""),
		Interests:     getString(record, "interests", ""),
		MaritalStatus: getString(record, "marital_status", ""),
		FamilyKey:     getString(record, "family_key", ""),
		IsArchived:    getBool(record, "is_archived", false),
	}
}
