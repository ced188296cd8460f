package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/zwrk/workout-api/internal/database/users"
	"github.com/zwrk/workout-api/internal/entities"
)

// UserStore defines database operations for users.
type UserStore interface {
	List(ctx context.Context) ([]entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	Update(ctx context.Context, id uint, patch users.Patch) (*entities.User, error)
	Delete(ctx context.Context, id uint) error
}

type createUserRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1"`
	LastName  string `json:"lastName" binding:"required,min=1"`
	Email     string `json:"email" binding:"required,email"`
}

type patchUserRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

type UsersController struct {
	store   UserStore
	auditor DeleteAuditor
}

func NewUsersController(store UserStore, auditor DeleteAuditor) *UsersController {
	return &UsersController{store: store, auditor: auditor}
}

// List returns every user
// GET /users
func (uc *UsersController) List(c *gin.Context) {
	list, err := uc.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list users")
		return
	}
	respondOK(c, list)
}

// Create signs up a new user
// POST /users
func (uc *UsersController) Create(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req, false) {
		return
	}

	user := &entities.User{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	if err := uc.store.Create(c.Request.Context(), user); err != nil {
		respondAppError(c, err, "create user")
		return
	}
	respondOK(c, user)
}

// Get returns one user
// GET /users/:id
func (uc *UsersController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err, "get user")
		return
	}
	respondOK(c, user)
}

// Update changes the fields present in the body
// PATCH /users/:id
func (uc *UsersController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req patchUserRequest
	if !bindJSON(c, &req, true) {
		return
	}

	user, err := uc.store.Update(c.Request.Context(), id, users.Patch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		respondAppError(c, err, "update user")
		return
	}
	respondOK(c, user)
}

// Delete removes a user with everything they own
// DELETE /users/:id
func (uc *UsersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := uc.store.GetByID(ctx, id)
	if err != nil {
		respondAppError(c, err, "delete user")
		return
	}
	if err := uc.store.Delete(ctx, id); err != nil {
		respondAppError(c, err, "delete user")
		return
	}

	logDelete(ctx, uc.auditor, "user", id, user.Email)
	respondNoContent(c)
}
