// Package exercises provides database operations for exercises.
//
// Reads preload the exercise's tags through the exercises_tags join rows so
// callers can shape them with associations.ShapeExercise.
package exercises

import (
	"context"
	"fmt"

	"github.com/oapi-codegen/nullable"
	"gorm.io/gorm"

	"github.com/zwrk/workout-api/internal/apperr"
	"github.com/zwrk/workout-api/internal/database"
	"github.com/zwrk/workout-api/internal/entities"
)

var (
	ErrNotFound      = apperr.NotFound("Exercise not found")
	ErrOwnerNotFound = apperr.NotFound("User not found")
)

// Patch holds the fields of a partial update. A nil Name and an unspecified
// Description are left alone; a null Description clears the column.
type Patch struct {
	Name        *string
	Description nullable.Nullable[string]
}

func (p Patch) updates() map[string]any {
	updates := make(map[string]any)
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Description.IsSpecified() {
		if p.Description.IsNull() {
			updates["description"] = nil
		} else {
			updates["description"] = p.Description.MustGet()
		}
	}
	return updates
}

// Repository handles all exercise database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new exercises repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every exercise with its tags, ordered by id.
func (r *Repository) List(ctx context.Context) ([]entities.Exercise, error) {
	exercises := make([]entities.Exercise, 0)
	err := r.db.WithContext(ctx).
		Scopes(database.WithExerciseTags).
		Order("id ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

// Create inserts an exercise owned by exercise.UserID.
func (r *Repository) Create(ctx context.Context, exercise *entities.Exercise) error {
	if err := r.db.WithContext(ctx).Omit("ExerciseTags", "Sets").Create(exercise).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrOwnerNotFound
		}
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

// GetByID retrieves an exercise with its tags.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Exercise, error) {
	var exercise entities.Exercise
	err := r.db.WithContext(ctx).Scopes(database.WithExerciseTags).First(&exercise, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exercise %d: %w", id, err)
	}
	return &exercise, nil
}

// Update applies a partial update and returns the stored exercise with its
// tags. An empty patch returns the exercise unchanged.
func (r *Repository) Update(ctx context.Context, id uint, patch Patch) (*entities.Exercise, error) {
	updates := patch.updates()
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&entities.Exercise{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update exercise %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes an exercise together with its sets and tag links.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Exercise{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete exercise %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
