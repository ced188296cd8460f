package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/nullable"

	"github.com/zwrk/workout-api/internal/database/sets"
	"github.com/zwrk/workout-api/internal/entities"
)

// SetStore defines database operations for sets.
type SetStore interface {
	List(ctx context.Context) ([]entities.Set, error)
	Create(ctx context.Context, set *entities.Set) error
	GetByID(ctx context.Context, id uint) (*entities.Set, error)
	Update(ctx context.Context, id uint, patch sets.Patch) (*entities.Set, error)
	Delete(ctx context.Context, id uint) error
}

type createSetRequest struct {
	ExerciseID uint `json:"exerciseId" binding:"required,min=1"`
	Weight     *int `json:"weight" binding:"omitempty,min=1"`
	Reps       int  `json:"reps" binding:"required,min=1"`
}

// patchSetRequest: a null weight clears it.
type patchSetRequest struct {
	ExerciseID *uint                  `json:"exerciseId" binding:"omitempty,min=1"`
	Weight     nullable.Nullable[int] `json:"weight" binding:"omitempty,min=1"`
	Reps       *int                   `json:"reps" binding:"omitempty,min=1"`
}

type SetsController struct {
	store   SetStore
	auditor DeleteAuditor
}

func NewSetsController(store SetStore, auditor DeleteAuditor) *SetsController {
	return &SetsController{store: store, auditor: auditor}
}

// List returns every set
// GET /sets
func (sc *SetsController) List(c *gin.Context) {
	list, err := sc.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list sets")
		return
	}
	respondOK(c, list)
}

// Create records a set against an exercise
// POST /sets
func (sc *SetsController) Create(c *gin.Context) {
	var req createSetRequest
	if !bindJSON(c, &req, false) {
		return
	}

	set := &entities.Set{ExerciseID: req.ExerciseID, Weight: req.Weight, Reps: req.Reps}
	if err := sc.store.Create(c.Request.Context(), set); err != nil {
		respondAppError(c, err, "create set")
		return
	}
	respondOK(c, set)
}

// Get returns one set
// GET /sets/:id
func (sc *SetsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	set, err := sc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err, "get set")
		return
	}
	respondOK(c, set)
}

// Update changes the fields present in the body
// PATCH /sets/:id
func (sc *SetsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req patchSetRequest
	if !bindJSON(c, &req, true) {
		return
	}

	set, err := sc.store.Update(c.Request.Context(), id, sets.Patch{
		ExerciseID: req.ExerciseID,
		Weight:     req.Weight,
		Reps:       req.Reps,
	})
	if err != nil {
		respondAppError(c, err, "update set")
		return
	}
	respondOK(c, set)
}

// Delete removes a set
// DELETE /sets/:id
func (sc *SetsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	set, err := sc.store.GetByID(ctx, id)
	if err != nil {
		respondAppError(c, err, "delete set")
		return
	}
	if err := sc.store.Delete(ctx, id); err != nil {
		respondAppError(c, err, "delete set")
		return
	}

	logDelete(ctx, sc.auditor, "set", id, fmt.Sprintf("%d reps of exercise %d", set.Reps, set.ExerciseID))
	respondNoContent(c)
}
