package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zwrk/workout-api/internal/entities"
)

type AuditController struct {
	reader        AuditReader
	cleanup       AuditCleanupEnqueuer
	retentionDays int
}

func NewAuditController(reader AuditReader, cleanup AuditCleanupEnqueuer, retentionDays int) *AuditController {
	return &AuditController{
		reader:        reader,
		cleanup:       cleanup,
		retentionDays: retentionDays,
	}
}

var auditEventTypes = map[entities.AuditEventType]bool{
	entities.AuditEventAssociation: true,
	entities.AuditEventDelete:      true,
	entities.AuditEventMaintenance: true,
}

// GetAuditEvents returns the most recent audit events of the principal
// GET /audit/events?type=association
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	userID, ok := requirePrincipal(c)
	if !ok {
		return
	}

	eventType := entities.AuditEventType(c.Query("type"))
	if eventType != "" && !auditEventTypes[eventType] {
		respondValidation(c, Issue{
			Field:   "type",
			Rule:    "oneof",
			Message: "type must be one of association, delete, maintenance",
		})
		return
	}

	events, err := ac.reader.RecentEvents(c.Request.Context(), userID, eventType)
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}
	respondOK(c, events)
}

// Cleanup queues removal of audit events past the retention window
// POST /audit/cleanup
func (ac *AuditController) Cleanup(c *gin.Context) {
	if ac.cleanup == nil {
		respondError(c, http.StatusServiceUnavailable, "Task queue is disabled")
		return
	}

	taskID, err := ac.cleanup.EnqueueAuditCleanup(ac.retentionDays)
	if err != nil {
		respondInternalError(c, err, "enqueue audit cleanup")
		return
	}
	c.JSON(http.StatusAccepted, TaskResponse{TaskID: taskID, Message: "Audit cleanup queued"})
}
