package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/nullable"

	"github.com/zwrk/workout-api/internal/associations"
	"github.com/zwrk/workout-api/internal/database/tags"
	"github.com/zwrk/workout-api/internal/entities"
)

// TagStore defines database operations for tags. Reads must preload the
// linked exercises so they can be shaped.
type TagStore interface {
	List(ctx context.Context) ([]entities.Tag, error)
	Create(ctx context.Context, tag *entities.Tag) error
	GetByID(ctx context.Context, id uint) (*entities.Tag, error)
	Update(ctx context.Context, id uint, patch tags.Patch) (*entities.Tag, error)
	Delete(ctx context.Context, id uint) error
}

type createTagRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type patchTagRequest struct {
	Name        *string                   `json:"name" binding:"omitempty,min=1,max=255"`
	Description nullable.Nullable[string] `json:"description" binding:"omitempty,max=1000"`
}

type TagsController struct {
	store   TagStore
	auditor DeleteAuditor
}

func NewTagsController(store TagStore, auditor DeleteAuditor) *TagsController {
	return &TagsController{store: store, auditor: auditor}
}

// List returns every tag with its exercises
// GET /tags
func (tc *TagsController) List(c *gin.Context) {
	list, err := tc.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list tags")
		return
	}
	respondOK(c, associations.ShapeTags(list))
}

// Create adds a tag owned by the principal
// POST /tags
func (tc *TagsController) Create(c *gin.Context) {
	ownerID, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createTagRequest
	if !bindJSON(c, &req, false) {
		return
	}

	tag := &entities.Tag{UserID: ownerID, Name: req.Name, Description: req.Description}
	if err := tc.store.Create(c.Request.Context(), tag); err != nil {
		respondAppError(c, err, "create tag")
		return
	}
	respondOK(c, associations.ShapeTag(*tag))
}

// Get returns one tag with its exercises
// GET /tags/:id
func (tc *TagsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tag, err := tc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err, "get tag")
		return
	}
	respondOK(c, associations.ShapeTag(*tag))
}

// Update changes the fields present in the body
// PATCH /tags/:id
func (tc *TagsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req patchTagRequest
	if !bindJSON(c, &req, true) {
		return
	}

	tag, err := tc.store.Update(c.Request.Context(), id, tags.Patch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondAppError(c, err, "update tag")
		return
	}
	respondOK(c, associations.ShapeTag(*tag))
}

// Delete removes a tag and its exercise links
// DELETE /tags/:id
func (tc *TagsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	tag, err := tc.store.GetByID(ctx, id)
	if err != nil {
		respondAppError(c, err, "delete tag")
		return
	}
	if err := tc.store.Delete(ctx, id); err != nil {
		respondAppError(c, err, "delete tag")
		return
	}

	logDelete(ctx, tc.auditor, "tag", id, tag.Name)
	respondNoContent(c)
}
