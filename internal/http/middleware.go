package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zwrk/workout-api/internal/logging"
)

const (
	// HeaderRequestID carries the request ID in and out.
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"
)

// RequestIDMiddleware reuses an incoming X-Request-ID or mints a UUID, and
// exposes it to handlers, the request context and the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// recoverWithJSON logs a panic and answers with the standard 500 body.
func recoverWithJSON(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(ContextKeyRequestID)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: msgInternalServerError})
	})
}

// notFound answers unknown routes.
func notFound(c *gin.Context) {
	respondNotFound(c, msgNotFound)
}
