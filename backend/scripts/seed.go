package main

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"kincrm/backend/internal/graph"
	"kincrm/backend/internal/linker"
	"kincrm/backend/internal/model"
	"kincrm/backend/pkg/config"
	"kincrm/backend/pkg/logger"
)

// Seeds a demo household through the full resolution pipeline, so the seeded
// data exercises the same merge and edge logic as live ingestion.
func main() {
	wipe := flag.Bool("wipe", false, "Delete all Person nodes and edges before seeding")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()
	repo, err := graph.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	defer repo.Close()

	if *wipe {
		log.Info("Wiping existing person graph...")
		if err := repo.Wipe(ctx); err != nil {
			log.Fatal("Failed to wipe graph", zap.Error(err))
		}
	}

	log.Info("Creating constraints...")
	if err := repo.EnsureConstraints(ctx); err != nil {
		log.Warn("Failed to create some constraints (may already exist)", zap.Error(err))
	}

	link := linker.New(repo, repo, cfg.DuplicateThreshold)

	batch := model.ExtractionBatch{
		Success: true,
		Persons: []model.ExtractedPerson{
			{Name: "Tejas Kawthalkar", Gender: "M", Phone: "+91 98765 43210", Location: "Pune", Occupation: "Software Engineer", IsSpeaker: true},
			{Name: "Priya Kawthalkar", Gender: "F", Phone: "+91 98765 43211", Location: "Pune"},
			{Name: "Aarav Kawthalkar", Gender: "M", Location: "Pune"},
			{Name: "Sunita Kawthalkar", Gender: "F", Location: "Nagpur"},
			{Name: "Rajesh Mehta", Gender: "M", Location: "Mumbai", Occupation: "Product Manager"},
		},
		Relationships: []model.ExtractedRelationship{
			{Person1: "Tejas Kawthalkar", Person2: "Priya Kawthalkar", RelationTerm: "wife"},
			{Person1: "Tejas Kawthalkar", Person2: "Aarav Kawthalkar", RelationTerm: "son"},
			{Person1: "Tejas Kawthalkar", Person2: "Sunita Kawthalkar", RelationTerm: "aai"},
			{Person1: "Tejas Kawthalkar", Person2: "Rajesh Mehta", RelationTerm: "colleague"},
		},
	}

	summary := link.ResolveAndLink(ctx, batch)
	if !summary.Success || len(summary.Errors) > 0 {
		log.Fatal("Seeding failed",
			zap.Strings("errors", summary.Errors),
		)
	}

	log.Info("Seeding completed",
		zap.Int("persons_created", summary.PersonsCreated),
		zap.Int("persons_merged", summary.PersonsMerged),
		zap.Int("edges", summary.RelationshipsCreated),
		zap.String("summary", summary.Message),
	)
}
