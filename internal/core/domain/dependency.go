package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskDependency is a directed edge meaning TaskID depends on
// DependsOnTaskID: the task is not gated-complete until the other is done.
// The edge set for a user must stay a DAG; the dependency service enforces
// that before any edge is persisted.
type TaskDependency struct {
	ID              string
	UserID          string
	TaskID          string
	DependsOnTaskID string
	CreatedAt       time.Time
}

func NewTaskDependency(userID, taskID, dependsOnTaskID string, now time.Time) (*TaskDependency, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "must not be empty")
	}
	if taskID == "" {
		return nil, NewValidationError("task_id", "must not be empty")
	}
	if dependsOnTaskID == "" {
		return nil, NewValidationError("depends_on_task_id", "must not be empty")
	}
	if taskID == dependsOnTaskID {
		return nil, ErrSelfDependency
	}

	return &TaskDependency{
		ID:              uuid.NewString(),
		UserID:          userID,
		TaskID:          taskID,
		DependsOnTaskID: dependsOnTaskID,
		CreatedAt:       now,
	}, nil
}
