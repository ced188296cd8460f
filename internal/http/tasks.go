package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

const taskStatusTimeout = 5 * time.Second

// TaskResponse acknowledges a queued background task.
type TaskResponse struct {
	TaskID  string `json:"taskId"`
	Message string `json:"message"`
}

// TaskStatusResponse is the state of one background task.
type TaskStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// TasksController handles task queue status endpoints.
type TasksController struct {
	reader TaskStatusReader
}

func NewTasksController(reader TaskStatusReader) *TasksController {
	return &TasksController{reader: reader}
}

// GetTaskStatus returns the status of a specific task
// GET /tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), taskStatusTimeout)
	defer cancel()

	status, err := tc.reader.TaskStatus(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}
	if status == "not_found" {
		respondNotFound(c, "Task not found")
		return
	}
	respondOK(c, TaskStatusResponse{ID: taskID, Status: status})
}
