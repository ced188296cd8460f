// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByID(ctx, id)
package users

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/zwrk/workout-api/internal/apperr"
	"github.com/zwrk/workout-api/internal/database"
	"github.com/zwrk/workout-api/internal/entities"
)

var (
	ErrNotFound   = apperr.NotFound("User not found")
	ErrEmailTaken = apperr.Conflict("Email already registered")
)

// Patch holds the fields of a partial update; nil fields are left alone.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (p Patch) updates() map[string]any {
	updates := make(map[string]any)
	if p.FirstName != nil {
		updates["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		updates["last_name"] = *p.LastName
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	return updates
}

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every user ordered by id.
func (r *Repository) List(ctx context.Context) ([]entities.User, error) {
	users := make([]entities.User, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create inserts a user. A taken email yields ErrEmailTaken.
func (r *Repository) Create(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// Update applies a partial update and returns the stored row. An empty patch
// returns the user unchanged.
func (r *Repository) Update(ctx context.Context, id uint, patch Patch) (*entities.User, error) {
	updates := patch.updates()
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if database.IsDuplicateKey(result.Error) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user. Their exercises and tags go with them.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
