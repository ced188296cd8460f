package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserID is the gin context key holding the principal.
const ContextKeyUserID = "auth_user_id"

// DefaultUserID is the owner used when none is configured.
const DefaultUserID = uint(1)

type userIDKey struct{}

// Principal attaches ownerID to every request. A zero ownerID falls back to
// DefaultUserID.
func Principal(ownerID uint) gin.HandlerFunc {
	if ownerID == 0 {
		ownerID = DefaultUserID
	}
	return func(c *gin.Context) {
		c.Set(ContextKeyUserID, ownerID)
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), ownerID))
		c.Next()
	}
}

// GetUserID retrieves the principal from the gin context.
func GetUserID(c *gin.Context) (uint, bool) {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok && userID != 0 {
			return userID, true
		}
	}
	return 0, false
}

// WithUserID attaches a principal to ctx.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the principal carried by ctx.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uint)
	return userID, ok && userID != 0
}
