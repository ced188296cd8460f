package http

import (
	"context"

	"github.com/zwrk/workout-api/internal/entities"
)

// Each controller declares the store it needs next to its handlers
// (UserStore, ExerciseStore, TagStore, SetStore, TagLinker). The
// interfaces below are shared by more than one controller.

// DeleteAuditor records entity removals. Controllers tolerate a nil auditor.
type DeleteAuditor interface {
	LogDelete(ctx context.Context, entityType string, entityID uint, entityName string)
}

// AuditReader lists recorded audit events.
type AuditReader interface {
	RecentEvents(ctx context.Context, userID uint, eventType entities.AuditEventType) ([]entities.AuditEvent, error)
}

// AuditCleanupEnqueuer schedules removal of audit events older than the
// retention window.
type AuditCleanupEnqueuer interface {
	EnqueueAuditCleanup(retentionDays int) (string, error)
}

// TaskStatusReader reports the state of a queued background task.
type TaskStatusReader interface {
	TaskStatus(ctx context.Context, taskID string) (string, error)
}

func logDelete(ctx context.Context, auditor DeleteAuditor, entityType string, id uint, name string) {
	if auditor == nil {
		return
	}
	auditor.LogDelete(ctx, entityType, id, name)
}
