// Package sets provides database operations for exercise sets.
package sets

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
	ErrNotFound         = apperr.NotFound("Set not found")
	ErrExerciseNotFound = apperr.NotFound("Exercise not found")
)

// Patch holds the fields of a partial update. Nil pointers and an unspecified
// Weight are left alone; a null Weight clears the column.
type Patch struct {
	ExerciseID *uint
	Weight     nullable.Nullable[int]
	Reps       *int
}

func (p Patch) updates() map[string]any {
	updates := make(map[string]any)
	if p.ExerciseID != nil {
		updates["exercise_id"] = *p.ExerciseID
	}
	if p.Weight.IsSpecified() {
		if p.Weight.IsNull() {
			updates["weight"] = nil
		} else {
			updates["weight"] = p.Weight.MustGet()
		}
	}
	if p.Reps != nil {
		updates["reps"] = *p.Reps
	}
	return updates
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]entities.Set, error) {
	sets := make([]entities.Set, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&sets).Error; err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}
	return sets, nil
}

// Create inserts a set. A missing exercise yields ErrExerciseNotFound.
func (r *Repository) Create(ctx context.Context, set *entities.Set) error {
	if err := r.db.WithContext(ctx).Create(set).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrExerciseNotFound
		}
		return fmt.Errorf("failed to create set: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Set, error) {
	var set entities.Set
	if err := r.db.WithContext(ctx).First(&set, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get set %d: %w", id, err)
	}
	return &set, nil
}

// Update applies a partial update. Moving a set to a missing exercise yields
// ErrExerciseNotFound.
func (r *Repository) Update(ctx context.Context, id uint, patch Patch) (*entities.Set, error) {
	updates := patch.updates()
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&entities.Set{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if database.IsForeignKeyViolation(result.Error) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("failed to update set %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Set{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete set %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
