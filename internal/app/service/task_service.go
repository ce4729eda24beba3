package service

import (
	"context"
	"time"

	"omnicrm/internal/core/domain"
	"omnicrm/internal/core/ports"
)

type TaskService struct {
	taskRepository       ports.TaskRepository
	dependencyRepository ports.TaskDependencyRepository
}

func NewTaskService(taskRepository ports.TaskRepository, dependencyRepository ports.TaskDependencyRepository) *TaskService {
	return &TaskService{
		taskRepository:       taskRepository,
		dependencyRepository: dependencyRepository,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(input, time.Now())
	if err != nil {
		return nil, err
	}

	if input.ParentTaskID != nil {
		if _, err := s.taskRepository.GetByID(ctx, input.UserID, *input.ParentTaskID); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepository.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	return s.taskRepository.GetByID(ctx, userID, taskID)
}

func (s *TaskService) ListTasks(ctx context.Context, userID string, filter ports.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, userID, filter)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (*domain.Task, error) {
	return s.mutate(ctx, userID, taskID, func(task *domain.Task, now time.Time) error {
		return task.ApplyUpdate(input, now)
	})
}

func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	return s.mutate(ctx, userID, taskID, func(task *domain.Task, now time.Time) error {
		task.Complete(now)
		return nil
	})
}

func (s *TaskService) ReopenTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	return s.mutate(ctx, userID, taskID, func(task *domain.Task, now time.Time) error {
		task.Reopen(now)
		return nil
	})
}

func (s *TaskService) CancelTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	return s.mutate(ctx, userID, taskID, func(task *domain.Task, now time.Time) error {
		task.Cancel(now)
		return nil
	})
}

func (s *TaskService) SoftDeleteTask(ctx context.Context, userID, taskID string) error {
	_, err := s.mutate(ctx, userID, taskID, func(task *domain.Task, now time.Time) error {
		task.SoftDelete(now)
		return nil
	})
	return err
}

func (s *TaskService) RestoreTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	task, err := s.taskRepository.GetByIDIncludeDeleted(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Restore(time.Now())
	if err := s.taskRepository.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// PurgeTask removes the row permanently, together with every dependency edge
// touching it, so no edge dangles after the task is gone.
func (s *TaskService) PurgeTask(ctx context.Context, userID, taskID string) error {
	if _, err := s.taskRepository.GetByIDIncludeDeleted(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.dependencyRepository.DeleteAllForTask(ctx, userID, taskID); err != nil {
		return err
	}
	return s.taskRepository.HardDelete(ctx, userID, taskID)
}

func (s *TaskService) mutate(ctx context.Context, userID, taskID string, apply func(*domain.Task, time.Time) error) (*domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := apply(task, time.Now()); err != nil {
		return nil, err
	}

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

var _ ports.TaskService = (*TaskService)(nil)
