package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/nullable"

	"github.com/zwrk/workout-api/internal/associations"
	"github.com/zwrk/workout-api/internal/auth"
	"github.com/zwrk/workout-api/internal/database/exercises"
	"github.com/zwrk/workout-api/internal/entities"
)

// ExerciseStore defines database operations for exercises. Reads must
// preload tags so they can be shaped.
type ExerciseStore interface {
	List(ctx context.Context) ([]entities.Exercise, error)
	Create(ctx context.Context, exercise *entities.Exercise) error
	GetByID(ctx context.Context, id uint) (*entities.Exercise, error)
	Update(ctx context.Context, id uint, patch exercises.Patch) (*entities.Exercise, error)
	Delete(ctx context.Context, id uint) error
}

// TagLinker adds and removes exercise-tag links.
type TagLinker interface {
	AddTag(ctx context.Context, exerciseID, tagID uint) (*associations.ExerciseWithTags, error)
	RemoveTag(ctx context.Context, exerciseID, tagID uint) error
}

type createExerciseRequest struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// patchExerciseRequest: a null description clears it.
type patchExerciseRequest struct {
	Name        *string                   `json:"name" binding:"omitempty,min=1"`
	Description nullable.Nullable[string] `json:"description" binding:"omitempty,min=1"`
}

type ExercisesController struct {
	store   ExerciseStore
	linker  TagLinker
	auditor DeleteAuditor
}

func NewExercisesController(store ExerciseStore, linker TagLinker, auditor DeleteAuditor) *ExercisesController {
	return &ExercisesController{store: store, linker: linker, auditor: auditor}
}

// List returns every exercise with its tags
// GET /exercises
func (ec *ExercisesController) List(c *gin.Context) {
	list, err := ec.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list exercises")
		return
	}
	respondOK(c, associations.ShapeExercises(list))
}

// Create adds an exercise owned by the principal
// POST /exercises
func (ec *ExercisesController) Create(c *gin.Context) {
	ownerID, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createExerciseRequest
	if !bindJSON(c, &req, false) {
		return
	}

	exercise := &entities.Exercise{UserID: ownerID, Name: req.Name, Description: req.Description}
	if err := ec.store.Create(c.Request.Context(), exercise); err != nil {
		respondAppError(c, err, "create exercise")
		return
	}
	respondOK(c, associations.ShapeExercise(*exercise))
}

// Get returns one exercise with its tags
// GET /exercises/:id
func (ec *ExercisesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := ec.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err, "get exercise")
		return
	}
	respondOK(c, associations.ShapeExercise(*exercise))
}

// Update changes the fields present in the body
// PATCH /exercises/:id
func (ec *ExercisesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req patchExerciseRequest
	if !bindJSON(c, &req, true) {
		return
	}

	exercise, err := ec.store.Update(c.Request.Context(), id, exercises.Patch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondAppError(c, err, "update exercise")
		return
	}
	respondOK(c, associations.ShapeExercise(*exercise))
}

// Delete removes an exercise, its sets and its tag links
// DELETE /exercises/:id
func (ec *ExercisesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	exercise, err := ec.store.GetByID(ctx, id)
	if err != nil {
		respondAppError(c, err, "delete exercise")
		return
	}
	if err := ec.store.Delete(ctx, id); err != nil {
		respondAppError(c, err, "delete exercise")
		return
	}

	logDelete(ctx, ec.auditor, "exercise", id, exercise.Name)
	respondNoContent(c)
}

// AddTag links a tag to an exercise
// POST /exercises/:id/tags/:tagId
func (ec *ExercisesController) AddTag(c *gin.Context) {
	exerciseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tagId")
	if !ok {
		return
	}

	exercise, err := ec.linker.AddTag(c.Request.Context(), exerciseID, tagID)
	if err != nil {
		respondAppError(c, err, "add tag to exercise")
		return
	}
	respondCreated(c, exercise)
}

// RemoveTag unlinks a tag from an exercise
// DELETE /exercises/:id/tags/:tagId
func (ec *ExercisesController) RemoveTag(c *gin.Context) {
	exerciseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tagId")
	if !ok {
		return
	}

	if err := ec.linker.RemoveTag(c.Request.Context(), exerciseID, tagID); err != nil {
		respondAppError(c, err, "remove tag from exercise")
		return
	}
	respondNoContent(c)
}

// requirePrincipal reads the acting user, answering 401 when none is set.
func requirePrincipal(c *gin.Context) (uint, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, 401, "Unauthorized")
		return 0, false
	}
	return userID, true
}
