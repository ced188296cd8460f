package associations

import (
	"context"

	"github.com/zwrk/workout-api/internal/apperr"
	"github.com/zwrk/workout-api/internal/entities"
)

var (
	ErrExerciseNotFound    = apperr.NotFound("Exercise not found")
	ErrTagNotFound         = apperr.NotFound("Tag not found")
	ErrAlreadyTagged       = apperr.Conflict("Tag already added to exercise")
	ErrAssociationNotFound = apperr.NotFound("Exercise, tag, or association not found")
	ErrExerciseVanished    = apperr.Internal("Exercise not found after update", nil)
)

// Store is the persistence the engine runs against.
//
// CreateAssociation must return ErrAlreadyTagged when the pair is already
// linked. FindExerciseWithTags returns a nil exercise, not an error, when the
// row is missing.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Store) error) error
	ExerciseExists(ctx context.Context, id uint) (bool, error)
	TagExists(ctx context.Context, id uint) (bool, error)
	CreateAssociation(ctx context.Context, exerciseID, tagID uint) error
	DeleteAssociation(ctx context.Context, exerciseID, tagID uint) (int64, error)
	FindExerciseWithTags(ctx context.Context, id uint) (*entities.Exercise, error)
}

// Auditor records link changes.
type Auditor interface {
	LogAssociation(ctx context.Context, action string, exerciseID, tagID uint, err error)
}
