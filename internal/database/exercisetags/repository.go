// Package exercisetags stores exercise-tag links and implements
// associations.Store.
package exercisetags

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/zwrk/workout-api/internal/associations"
	"github.com/zwrk/workout-api/internal/database"
	"github.com/zwrk/workout-api/internal/entities"
)

// Repository handles exercises_tags rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new exercise-tag repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn against a repository bound to one database transaction.
func (r *Repository) Transaction(ctx context.Context, fn func(tx associations.Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) ExerciseExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &entities.Exercise{}, id)
}

func (r *Repository) TagExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &entities.Tag{}, id)
}

func (r *Repository) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateAssociation inserts a link. An existing pair yields
// associations.ErrAlreadyTagged.
func (r *Repository) CreateAssociation(ctx context.Context, exerciseID, tagID uint) error {
	link := &entities.ExerciseTag{ExerciseID: exerciseID, TagID: tagID}
	if err := r.db.WithContext(ctx).Omit("Exercise", "Tag").Create(link).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return associations.ErrAlreadyTagged
		}
		return fmt.Errorf("failed to create exercise tag: %w", err)
	}
	return nil
}

// DeleteAssociation removes the link and reports how many rows went.
func (r *Repository) DeleteAssociation(ctx context.Context, exerciseID, tagID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("exercise_id = ? AND tag_id = ?", exerciseID, tagID).
		Delete(&entities.ExerciseTag{})
	return result.RowsAffected, result.Error
}

// FindExerciseWithTags loads an exercise with its tags, or nil if it is gone.
func (r *Repository) FindExerciseWithTags(ctx context.Context, id uint) (*entities.Exercise, error) {
	var exercises []entities.Exercise
	err := r.db.WithContext(ctx).
		Scopes(database.WithExerciseTags).
		Where("id = ?", id).
		Limit(1).
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, nil
	}
	return &exercises[0], nil
}
