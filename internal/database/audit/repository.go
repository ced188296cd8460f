// Package audit persists audit events and enforces their retention.
package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zwrk/workout-api/internal/entities"
)

// RecentEventsLimit caps how many events a single read returns.
const RecentEventsLimit = 100

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an audit event to the database.
func (r *Repository) LogEvent(ctx context.Context, event *entities.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// RecentEvents returns the newest events, optionally filtered by type and user.
// A zero userID or empty eventType disables that filter.
func (r *Repository) RecentEvents(ctx context.Context, userID uint, eventType entities.AuditEventType) ([]entities.AuditEvent, error) {
	events := make([]entities.AuditEvent, 0)

	query := r.db.WithContext(ctx).Model(&entities.AuditEvent{})
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	err := query.Order("created_at DESC").Order("id DESC").Limit(RecentEventsLimit).Find(&events).Error
	return events, err
}

// DeleteOldEvents removes audit events older than the specified time.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", olderThan).Delete(&entities.AuditEvent{})
	return result.RowsAffected, result.Error
}
