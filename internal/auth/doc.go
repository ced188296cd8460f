// Package auth threads the request principal through the application.
//
// Credentials are out of scope: every request acts as the owner configured
// with OWNER_ID (default 1). The middleware stores that id both in the gin
// context, for handlers, and in the request context, for code below the
// HTTP layer such as the audit service.
//
// # Usage
//
//	router.Use(auth.Principal(cfg.Auth.OwnerID))
//
// Extract the principal in handlers:
//
//	userID, ok := auth.GetUserID(c)
package auth
