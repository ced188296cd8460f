package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/zwrk/workout-api/internal/associations"
	"github.com/zwrk/workout-api/internal/audit"
	"github.com/zwrk/workout-api/internal/database/exercises"
	"github.com/zwrk/workout-api/internal/database/exercisetags"
	"github.com/zwrk/workout-api/internal/database/sets"
	"github.com/zwrk/workout-api/internal/database/tags"
	"github.com/zwrk/workout-api/internal/database/users"
	"github.com/zwrk/workout-api/internal/http"
	"github.com/zwrk/workout-api/internal/scheduler"
	"github.com/zwrk/workout-api/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.UserStore = (*users.Repository)(nil)
var _ http.ExerciseStore = (*exercises.Repository)(nil)
var _ http.TagStore = (*tags.Repository)(nil)
var _ http.SetStore = (*sets.Repository)(nil)

// Association store backing the tagging engine
var _ associations.Store = (*exercisetags.Repository)(nil)

// =============================================================================
// Tagging and Audit
// =============================================================================

var _ http.TagLinker = (*associations.Engine)(nil)
var _ associations.Auditor = (*audit.Service)(nil)
var _ http.DeleteAuditor = (*audit.Service)(nil)
var _ http.AuditReader = (*audit.Service)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
var _ http.AuditCleanupEnqueuer = (*tasks.Client)(nil)
var _ http.TaskStatusReader = (*tasks.Client)(nil)
var _ scheduler.CleanupEnqueuer = (*tasks.Client)(nil)
