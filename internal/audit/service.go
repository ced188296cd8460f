package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zwrk/workout-api/internal/auth"
	"github.com/zwrk/workout-api/internal/database/audit"
	"github.com/zwrk/workout-api/internal/entities"
	"github.com/zwrk/workout-api/internal/logging"
)

// Service provides high-level audit logging functionality. Recording never
// fails the caller; write errors are logged.
type Service struct {
	repo     *audit.Repository
	logger   *zap.Logger
	sync     bool
	inflight sync.WaitGroup
}

// NewService creates a new audit service that writes in the background.
func NewService(repo *audit.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// SetSynchronous makes every Log* call write before returning.
func (s *Service) SetSynchronous(sync bool) {
	s.sync = sync
}

// Log records a generic audit event.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	return s.repo.LogEvent(ctx, event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.write(event)
	}()
}

// Wait blocks until every background write has finished. Call it before
// closing the database.
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) record(event *entities.AuditEvent) {
	if s.sync {
		s.write(event)
		return
	}
	s.LogAsync(event)
}

// write detaches from the request context, which is gone by the time an
// async write runs.
func (s *Service) write(event *entities.AuditEvent) {
	if err := s.repo.LogEvent(context.Background(), event); err != nil {
		s.logger.Error("failed to log audit event",
			zap.String("action", event.Action),
			zap.Error(err),
		)
	}
}

// newEvent stamps the principal and request ID carried by ctx.
func newEvent(ctx context.Context, eventType entities.AuditEventType, action string) *entities.AuditEvent {
	userID, _ := auth.UserIDFromContext(ctx)
	return &entities.AuditEvent{
		UserID:    userID,
		EventType: eventType,
		Action:    action,
		RequestID: logging.RequestIDFromContext(ctx),
		Status:    entities.AuditStatusSuccess,
	}
}

// LogAssociation records an exercise-tag link change.
func (s *Service) LogAssociation(ctx context.Context, action string, exerciseID, tagID uint, err error) {
	event := newEvent(ctx, entities.AuditEventAssociation, action)
	event.Description = fmt.Sprintf("Exercise %d, tag %d", exerciseID, tagID)
	event.EntityType = "exercise"
	event.EntityID = &exerciseID

	metadata := map[string]any{
		"exercise_id": exerciseID,
		"tag_id":      tagID,
	}
	if mdBytes, e := json.Marshal(metadata); e == nil {
		event.Metadata = string(mdBytes)
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.record(event)
}

// LogDelete records a deletion event.
func (s *Service) LogDelete(ctx context.Context, entityType string, entityID uint, entityName string) {
	event := newEvent(ctx, entities.AuditEventDelete, entityType+"_delete")
	event.Description = truncate("Deleted "+entityType+": "+entityName, 500)
	event.EntityType = entityType
	event.EntityID = &entityID

	s.record(event)
}

// LogCleanup records a retention sweep.
func (s *Service) LogCleanup(deleted int64, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventMaintenance,
		Action:      "audit_cleanup",
		Description: fmt.Sprintf("Deleted %d expired audit events", deleted),
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.record(event)
}

// RecentEvents returns the newest events, optionally filtered.
func (s *Service) RecentEvents(ctx context.Context, userID uint, eventType entities.AuditEventType) ([]entities.AuditEvent, error) {
	return s.repo.RecentEvents(ctx, userID, eventType)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
