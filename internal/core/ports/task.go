package ports

import (
	"context"

	"omnicrm/internal/core/domain"
)

// TaskFilter narrows List queries. Soft-deleted rows are excluded unless
// DeletedOnly asks for the trash view.
type TaskFilter struct {
	Category    *domain.TaskCategory
	ContactID   *string
	ProjectID   *string
	DeletedOnly bool
}

type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	// GetByID returns domain.ErrTaskNotFound for unknown or soft-deleted tasks.
	GetByID(ctx context.Context, userID, taskID string) (*domain.Task, error)
	// GetByIDIncludeDeleted also finds soft-deleted tasks, for restore/purge.
	GetByIDIncludeDeleted(ctx context.Context, userID, taskID string) (*domain.Task, error)
	List(ctx context.Context, userID string, filter TaskFilter) ([]domain.Task, error)
	// HardDelete removes the row permanently.
	HardDelete(ctx context.Context, userID, taskID string) error
}

// TaskLookup is the slice of TaskRepository the dependency service needs for
// completion gating.
type TaskLookup interface {
	GetByID(ctx context.Context, userID, taskID string) (*domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, userID string, filter TaskFilter) ([]domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (*domain.Task, error)
	CompleteTask(ctx context.Context, userID, taskID string) (*domain.Task, error)
	ReopenTask(ctx context.Context, userID, taskID string) (*domain.Task, error)
	CancelTask(ctx context.Context, userID, taskID string) (*domain.Task, error)
	SoftDeleteTask(ctx context.Context, userID, taskID string) error
	RestoreTask(ctx context.Context, userID, taskID string) (*domain.Task, error)
	PurgeTask(ctx context.Context, userID, taskID string) error
}
