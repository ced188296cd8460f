// Command generate_demo creates a demo database with a week of sample training.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/zwrk/workout-api/internal/associations"
	"github.com/zwrk/workout-api/internal/database"
	"github.com/zwrk/workout-api/internal/database/exercises"
	"github.com/zwrk/workout-api/internal/database/exercisetags"
	"github.com/zwrk/workout-api/internal/database/sets"
	"github.com/zwrk/workout-api/internal/database/tags"
	"github.com/zwrk/workout-api/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type exerciseConfig struct {
	Name        string
	Description string
	Tags        []string
	Sets        []setConfig
}

type setConfig struct {
	Weight int // zero means bodyweight
	Reps   int
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	logger.Info("generating demo database", zap.String("path", *dbPath))

	// Start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		logger.Fatal("failed to remove existing demo database", zap.Error(err))
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		logger.Fatal("failed to create database", zap.Error(err))
	}
	defer db.Close()

	const ownerID = 1
	if err := db.SeedOwner(ownerID, logger); err != nil {
		logger.Fatal("failed to seed owner", zap.Error(err))
	}

	ctx := context.Background()
	tagIDs := createTags(ctx, db, ownerID, logger)

	exerciseRepo := exercises.NewRepository(db.DB)
	setRepo := sets.NewRepository(db.DB)
	engine := associations.NewEngine(exercisetags.NewRepository(db.DB), nil, logger)

	var setCount int
	for _, cfg := range demoExercises() {
		description := cfg.Description
		exercise := &entities.Exercise{UserID: ownerID, Name: cfg.Name, Description: &description}
		if err := exerciseRepo.Create(ctx, exercise); err != nil {
			logger.Fatal("failed to create exercise", zap.String("name", cfg.Name), zap.Error(err))
		}

		for _, tagName := range cfg.Tags {
			if _, err := engine.AddTag(ctx, exercise.ID, tagIDs[tagName]); err != nil {
				logger.Fatal("failed to tag exercise", zap.String("exercise", cfg.Name), zap.String("tag", tagName), zap.Error(err))
			}
		}

		for _, s := range cfg.Sets {
			set := &entities.Set{ExerciseID: exercise.ID, Reps: s.Reps}
			if s.Weight > 0 {
				weight := s.Weight
				set.Weight = &weight
			}
			if err := setRepo.Create(ctx, set); err != nil {
				logger.Fatal("failed to create set", zap.Error(err))
			}
			setCount++
		}
	}

	logger.Info("demo database generated",
		zap.Int("tags", len(tagIDs)),
		zap.Int("exercises", len(demoExercises())),
		zap.Int("sets", setCount),
	)
}

func createTags(ctx context.Context, db *database.Database, ownerID uint, logger *zap.Logger) map[string]uint {
	tagDefs := []struct{ Name, Description string }{
		{"Chest", "Pressing movements for the pecs"},
		{"Back", "Pulls and rows"},
		{"Legs", "Squats, hinges and lunges"},
		{"Shoulders", "Overhead and lateral work"},
		{"Compound", "Multi-joint lifts"},
		{"Bodyweight", "No external load"},
	}

	repo := tags.NewRepository(db.DB)
	ids := make(map[string]uint, len(tagDefs))
	for _, def := range tagDefs {
		description := def.Description
		tag := &entities.Tag{UserID: ownerID, Name: def.Name, Description: &description}
		if err := repo.Create(ctx, tag); err != nil {
			logger.Fatal("failed to create tag", zap.String("name", def.Name), zap.Error(err))
		}
		ids[def.Name] = tag.ID
	}
	return ids
}

func demoExercises() []exerciseConfig {
	return []exerciseConfig{
		{
			Name:        "Bench Press",
			Description: "Barbell press from the chest, feet planted",
			Tags:        []string{"Chest", "Compound"},
			Sets:        []setConfig{{60, 10}, {70, 8}, {80, 5}},
		},
		{
			Name:        "Back Squat",
			Description: "High-bar squat to parallel",
			Tags:        []string{"Legs", "Compound"},
			Sets:        []setConfig{{80, 8}, {90, 6}, {100, 5}},
		},
		{
			Name:        "Pull-up",
			Description: "Overhand grip, full hang to chin over bar",
			Tags:        []string{"Back", "Bodyweight"},
			Sets:        []setConfig{{0, 10}, {0, 8}, {0, 6}},
		},
		{
			Name:        "Overhead Press",
			Description: "Standing strict press",
			Tags:        []string{"Shoulders", "Compound"},
			Sets:        []setConfig{{40, 8}, {45, 6}},
		},
		{
			Name:        "Push-up",
			Description: "Hands under shoulders, body in a straight line",
			Tags:        []string{"Chest", "Bodyweight"},
			Sets:        []setConfig{{0, 20}, {0, 15}},
		},
	}
}
