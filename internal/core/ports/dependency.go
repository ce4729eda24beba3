package ports

import (
	"context"

	"omnicrm/internal/core/domain"
)

type TaskDependencyRepository interface {
	Insert(ctx context.Context, dependency *domain.TaskDependency) error
	// Delete removes one edge by ID; domain.ErrDependencyNotFound when absent.
	Delete(ctx context.Context, userID, dependencyID string) error
	// DeleteByPair removes the edge for an ordered (task, depends-on) pair.
	DeleteByPair(ctx context.Context, userID, taskID, dependsOnTaskID string) error
	// DeleteAllForTask removes every edge touching the task, both directions.
	DeleteAllForTask(ctx context.Context, userID, taskID string) error
	// ListByTaskID returns edges where the task is the dependent side.
	ListByTaskID(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error)
	// ListByDependsOnTaskID returns edges where the task is depended upon.
	ListByDependsOnTaskID(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error)
	Exists(ctx context.Context, userID, taskID, dependsOnTaskID string) (bool, error)
	CountByTaskID(ctx context.Context, userID, taskID string) (int, error)
	CountByDependsOnTaskID(ctx context.Context, userID, taskID string) (int, error)
}

type TaskDependencyService interface {
	ListDependenciesForTask(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error)
	ListTasksDependingOn(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error)
	DependencyExists(ctx context.Context, userID, taskID, dependsOnTaskID string) (bool, error)
	CreateDependency(ctx context.Context, userID, taskID, dependsOnTaskID string) (*domain.TaskDependency, error)
	DeleteDependency(ctx context.Context, userID, dependencyID string) error
	DeleteDependencyByPair(ctx context.Context, userID, taskID, dependsOnTaskID string) error
	DeleteAllForTask(ctx context.Context, userID, taskID string) error
	HasAnyDependencies(ctx context.Context, userID, taskID string) (bool, error)
	IsDependencyForOthers(ctx context.Context, userID, taskID string) (bool, error)
	DependencyIDs(ctx context.Context, userID, taskID string) ([]string, error)
	DependentTaskIDs(ctx context.Context, userID, taskID string) ([]string, error)
	WouldCreateCircularDependency(ctx context.Context, userID, taskID, dependsOnTaskID string) (bool, error)
	AreAllDependenciesCompleted(ctx context.Context, userID, taskID string) (bool, error)
}
