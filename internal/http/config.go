package http

import (
	"go.uber.org/zap"

	"github.com/zwrk/workout-api/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. Routes whose store is nil are not registered.
type RouterConfig struct {
	// Core dependencies
	Logger   *zap.Logger
	Database *database.Database

	// Application info
	Version string

	// Principal attached to every request
	OwnerID uint

	// Browser origins allowed by CORS; empty disables the middleware
	AllowedOrigins []string

	// Entity stores
	UserStore     UserStore
	ExerciseStore ExerciseStore
	TagStore      TagStore
	SetStore      SetStore

	// Exercise-tag links
	TagLinker TagLinker

	// Audit trail
	Auditor            DeleteAuditor
	AuditReader        AuditReader
	AuditCleanup       AuditCleanupEnqueuer
	AuditRetentionDays int

	// Background task status, nil when the queue is disabled
	TaskStatus TaskStatusReader
}
