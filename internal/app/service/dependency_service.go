package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"omnicrm/internal/core/domain"
	"omnicrm/internal/core/ports"
)

// TaskDependencyService owns the "task depends on task" edge set and keeps it
// a DAG. The cycle check reads the persisted graph before writing the new
// edge, so edge creation for one user is serialized behind a per-user mutex;
// without it two concurrent creates could both pass the check against the
// pre-mutation snapshot and close a cycle.
type TaskDependencyService struct {
	dependencyRepository ports.TaskDependencyRepository
	taskLookup           ports.TaskLookup

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewTaskDependencyService(dependencyRepository ports.TaskDependencyRepository, taskLookup ports.TaskLookup) *TaskDependencyService {
	return &TaskDependencyService{
		dependencyRepository: dependencyRepository,
		taskLookup:           taskLookup,
		userLocks:            make(map[string]*sync.Mutex),
	}
}

func (s *TaskDependencyService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

func (s *TaskDependencyService) ListDependenciesForTask(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error) {
	return s.dependencyRepository.ListByTaskID(ctx, userID, taskID)
}

func (s *TaskDependencyService) ListTasksDependingOn(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error) {
	return s.dependencyRepository.ListByDependsOnTaskID(ctx, userID, taskID)
}

func (s *TaskDependencyService) DependencyExists(ctx context.Context, userID, taskID, dependsOnTaskID string) (bool, error) {
	return s.dependencyRepository.Exists(ctx, userID, taskID, dependsOnTaskID)
}

// CreateDependency validates in order: self-loop, cycle, duplicate. Each
// rejection maps to its own sentinel so callers can explain why the edge was
// refused.
func (s *TaskDependencyService) CreateDependency(ctx context.Context, userID, taskID, dependsOnTaskID string) (*domain.TaskDependency, error) {
	dependency, err := domain.NewTaskDependency(userID, taskID, dependsOnTaskID, time.Now())
	if err != nil {
		return nil, err
	}

	if _, err := s.taskLookup.GetByID(ctx, userID, taskID); err != nil {
		return nil, err
	}
	if _, err := s.taskLookup.GetByID(ctx, userID, dependsOnTaskID); err != nil {
		return nil, err
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	circular, err := s.WouldCreateCircularDependency(ctx, userID, taskID, dependsOnTaskID)
	if err != nil {
		return nil, err
	}
	if circular {
		return nil, domain.ErrCircularDependency
	}

	exists, err := s.dependencyRepository.Exists(ctx, userID, taskID, dependsOnTaskID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDependency
	}

	if err := s.dependencyRepository.Insert(ctx, dependency); err != nil {
		return nil, err
	}
	return dependency, nil
}

func (s *TaskDependencyService) DeleteDependency(ctx context.Context, userID, dependencyID string) error {
	return s.dependencyRepository.Delete(ctx, userID, dependencyID)
}

func (s *TaskDependencyService) DeleteDependencyByPair(ctx context.Context, userID, taskID, dependsOnTaskID string) error {
	return s.dependencyRepository.DeleteByPair(ctx, userID, taskID, dependsOnTaskID)
}

func (s *TaskDependencyService) DeleteAllForTask(ctx context.Context, userID, taskID string) error {
	return s.dependencyRepository.DeleteAllForTask(ctx, userID, taskID)
}

func (s *TaskDependencyService) HasAnyDependencies(ctx context.Context, userID, taskID string) (bool, error) {
	count, err := s.dependencyRepository.CountByTaskID(ctx, userID, taskID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *TaskDependencyService) IsDependencyForOthers(ctx context.Context, userID, taskID string) (bool, error) {
	count, err := s.dependencyRepository.CountByDependsOnTaskID(ctx, userID, taskID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *TaskDependencyService) DependencyIDs(ctx context.Context, userID, taskID string) ([]string, error) {
	dependencies, err := s.dependencyRepository.ListByTaskID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(dependencies))
	for _, dependency := range dependencies {
		ids = append(ids, dependency.DependsOnTaskID)
	}
	return ids, nil
}

func (s *TaskDependencyService) DependentTaskIDs(ctx context.Context, userID, taskID string) ([]string, error) {
	dependents, err := s.dependencyRepository.ListByDependsOnTaskID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(dependents))
	for _, dependent := range dependents {
		ids = append(ids, dependent.TaskID)
	}
	return ids, nil
}

// WouldCreateCircularDependency reports whether taskID is reachable from
// dependsOnTaskID along existing depends-on edges. Breadth-first walk with a
// visited set; the per-user graph is small, so no caching across calls.
func (s *TaskDependencyService) WouldCreateCircularDependency(ctx context.Context, userID, taskID, dependsOnTaskID string) (bool, error) {
	if taskID == dependsOnTaskID {
		return true, nil
	}

	visited := map[string]bool{dependsOnTaskID: true}
	queue := []string{dependsOnTaskID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == taskID {
			return true, nil
		}

		next, err := s.DependencyIDs(ctx, userID, current)
		if err != nil {
			return false, err
		}
		for _, id := range next {
			if !visited[id] {
				visited[id] = true
				queue = append(queue, id)
			}
		}
	}

	return false, nil
}

// AreAllDependenciesCompleted is the gating check: true when the task has no
// dependencies or every dependency is done. A missing dependency task counts
// as incomplete.
func (s *TaskDependencyService) AreAllDependenciesCompleted(ctx context.Context, userID, taskID string) (bool, error) {
	ids, err := s.DependencyIDs(ctx, userID, taskID)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		task, err := s.taskLookup.GetByID(ctx, userID, id)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return false, nil
			}
			return false, err
		}
		if !task.IsCompleted() {
			return false, nil
		}
	}

	return true, nil
}

var _ ports.TaskDependencyService = (*TaskDependencyService)(nil)
