// Package tags provides database operations for tag management.
//
// This package implements the TagStore interface defined in internal/http/tags.go.
//
// # Interface Implementation
//
//	var _ http.TagStore = (*Repository)(nil)
//
// # Usage
//
//	repo := tags.NewRepository(db)
//	tag, err := repo.GetByID(ctx, id)
package tags

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
	ErrNotFound      = apperr.NotFound("Tag not found")
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

// Repository handles all tag database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tags repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every tag with its exercises, ordered by id.
func (r *Repository) List(ctx context.Context) ([]entities.Tag, error) {
	tags := make([]entities.Tag, 0)
	err := r.db.WithContext(ctx).
		Scopes(database.WithTagExercises).
		Order("id ASC").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// Create inserts a tag owned by tag.UserID.
func (r *Repository) Create(ctx context.Context, tag *entities.Tag) error {
	if err := r.db.WithContext(ctx).Omit("ExerciseTags").Create(tag).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrOwnerNotFound
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// GetByID retrieves a tag with its exercises.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).Scopes(database.WithTagExercises).First(&tag, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tag %d: %w", id, err)
	}
	return &tag, nil
}

// Update applies a partial update. An empty patch returns the tag unchanged.
func (r *Repository) Update(ctx context.Context, id uint, patch Patch) (*entities.Tag, error) {
	updates := patch.updates()
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&entities.Tag{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update tag %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a tag and every link to it.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Tag{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
