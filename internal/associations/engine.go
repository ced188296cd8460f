package associations

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zwrk/workout-api/internal/apperr"
	"github.com/zwrk/workout-api/internal/observability"
)

const (
	actionAdd    = "exercise_tag_add"
	actionRemove = "exercise_tag_remove"
)

// Engine creates and removes exercise-tag links.
type Engine struct {
	store   Store
	auditor Auditor
	logger  *zap.Logger
}

// NewEngine wires the engine. auditor may be nil.
func NewEngine(store Store, auditor Auditor, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, auditor: auditor, logger: logger}
}

// AddTag links tagID to exerciseID and returns the exercise with its tags.
func (e *Engine) AddTag(ctx context.Context, exerciseID, tagID uint) (*ExerciseWithTags, error) {
	err := e.store.Transaction(ctx, func(tx Store) error {
		exists, err := tx.ExerciseExists(ctx, exerciseID)
		if err != nil {
			return fmt.Errorf("check exercise %d: %w", exerciseID, err)
		}
		if !exists {
			return ErrExerciseNotFound
		}

		exists, err = tx.TagExists(ctx, tagID)
		if err != nil {
			return fmt.Errorf("check tag %d: %w", tagID, err)
		}
		if !exists {
			return ErrTagNotFound
		}

		if err := tx.CreateAssociation(ctx, exerciseID, tagID); err != nil {
			if errors.Is(err, ErrAlreadyTagged) {
				return ErrAlreadyTagged
			}
			return fmt.Errorf("link exercise %d to tag %d: %w", exerciseID, tagID, err)
		}
		return nil
	})
	if err != nil {
		e.observe(observability.OperationAddTag, err)
		return nil, err
	}

	exercise, err := e.store.FindExerciseWithTags(ctx, exerciseID)
	if err != nil {
		err = fmt.Errorf("reload exercise %d: %w", exerciseID, err)
		e.observe(observability.OperationAddTag, err)
		return nil, err
	}
	if exercise == nil {
		e.logger.Error("exercise vanished after tagging",
			zap.Uint("exercise_id", exerciseID),
			zap.Uint("tag_id", tagID),
		)
		e.observe(observability.OperationAddTag, ErrExerciseVanished)
		e.audit(ctx, actionAdd, exerciseID, tagID, ErrExerciseVanished)
		return nil, ErrExerciseVanished
	}

	e.observe(observability.OperationAddTag, nil)
	e.audit(ctx, actionAdd, exerciseID, tagID, nil)

	shaped := ShapeExercise(*exercise)
	return &shaped, nil
}

// RemoveTag deletes the link between exerciseID and tagID. A missing
// exercise, tag or link all yield ErrAssociationNotFound.
func (e *Engine) RemoveTag(ctx context.Context, exerciseID, tagID uint) error {
	deleted, err := e.store.DeleteAssociation(ctx, exerciseID, tagID)
	if err != nil {
		err = fmt.Errorf("unlink exercise %d from tag %d: %w", exerciseID, tagID, err)
		e.observe(observability.OperationRemoveTag, err)
		return err
	}
	if deleted == 0 {
		e.observe(observability.OperationRemoveTag, ErrAssociationNotFound)
		return ErrAssociationNotFound
	}

	e.observe(observability.OperationRemoveTag, nil)
	e.audit(ctx, actionRemove, exerciseID, tagID, nil)
	return nil
}

func (e *Engine) observe(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = apperr.KindOf(err).String()
	}
	observability.RecordAssociation(operation, outcome)
}

func (e *Engine) audit(ctx context.Context, action string, exerciseID, tagID uint, err error) {
	if e.auditor == nil {
		return
	}
	e.auditor.LogAssociation(ctx, action, exerciseID, tagID, err)
}
