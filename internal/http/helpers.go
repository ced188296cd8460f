package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zwrk/workout-api/internal/apperr"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Message string  `json:"message"`
	Issues  []Issue `json:"issues,omitempty"` // validation failures, 422 only
}

// Issue describes one rejected input field.
type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// MessageResponse is a bare message body.
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	msgNotFound            = "Not Found"
	msgUnprocessable       = "Unprocessable Entity"
	msgInternalServerError = "Internal Server Error"
)

// --- Error Response Helpers ---

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// respondValidation sends a 422 with the rejected fields.
func respondValidation(c *gin.Context, issues ...Issue) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: msgUnprocessable, Issues: issues})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	zap.L().Error("internal error",
		zap.String("context", context),
		zap.String("request_id", c.GetString(ContextKeyRequestID)),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msgInternalServerError})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

// respondAppError maps an error from the store or engine to a response.
// Anything that is not an *apperr.Error is treated as a 500.
func respondAppError(c *gin.Context, err error, context string) {
	appErr, ok := apperr.As(err)
	if !ok {
		respondInternalError(c, err, context)
		return
	}

	switch appErr.Kind {
	case apperr.KindNotFound:
		respondNotFound(c, appErr.Message)
	case apperr.KindConflict:
		respondError(c, http.StatusConflict, appErr.Message)
	case apperr.KindValidation:
		respondValidation(c, Issue{Field: "body", Rule: "invalid", Message: appErr.Message})
	default:
		zap.L().Error("internal inconsistency",
			zap.String("context", context),
			zap.String("request_id", c.GetString(ContextKeyRequestID)),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, appErr.Message)
	}
}

// --- Success Response Helpers ---

// respondOK sends a 200 OK response with data.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondNoContent sends an empty 204.
func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// --- Parameter Parsing ---

// parseIDParam extracts a positive integer ID from URL parameters.
// Returns the parsed ID or responds with a 422 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		respondValidation(c, Issue{
			Field:   paramName,
			Rule:    "positive_integer",
			Message: paramName + " must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}
