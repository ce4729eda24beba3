package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"omnicrm/internal/core/domain"
	"omnicrm/internal/core/ports"
)

type TaskDependencyRepository struct {
	db *sqlx.DB
}

type taskDependencyRow struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	TaskID          string    `db:"task_id"`
	DependsOnTaskID string    `db:"depends_on_task_id"`
	CreatedAt       time.Time `db:"created_at"`
}

var _ ports.TaskDependencyRepository = (*TaskDependencyRepository)(nil)

func NewTaskDependencyRepository(db *sqlx.DB) *TaskDependencyRepository {
	return &TaskDependencyRepository{db: db}
}

func (r *TaskDependencyRepository) Insert(ctx context.Context, dependency *domain.TaskDependency) error {
	_, err := r.db.NamedExecContext(ctx, `
INSERT INTO task_dependencies (id, user_id, task_id, depends_on_task_id, created_at)
VALUES (:id, :user_id, :task_id, :depends_on_task_id, :created_at);
`, taskDependencyRow{
		ID:              dependency.ID,
		UserID:          dependency.UserID,
		TaskID:          dependency.TaskID,
		DependsOnTaskID: dependency.DependsOnTaskID,
		CreatedAt:       dependency.CreatedAt,
	})
	return err
}

func (r *TaskDependencyRepository) Delete(ctx context.Context, userID, dependencyID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM task_dependencies WHERE id = ? AND user_id = ?;",
		dependencyID, userID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *TaskDependencyRepository) DeleteByPair(ctx context.Context, userID, taskID, dependsOnTaskID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM task_dependencies WHERE user_id = ? AND task_id = ? AND depends_on_task_id = ?;",
		userID, taskID, dependsOnTaskID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *TaskDependencyRepository) DeleteAllForTask(ctx context.Context, userID, taskID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM task_dependencies WHERE user_id = ? AND (task_id = ? OR depends_on_task_id = ?);",
		userID, taskID, taskID)
	return err
}

func (r *TaskDependencyRepository) ListByTaskID(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error) {
	return r.list(ctx,
		"SELECT * FROM task_dependencies WHERE user_id = ? AND task_id = ? ORDER BY created_at;",
		userID, taskID)
}

func (r *TaskDependencyRepository) ListByDependsOnTaskID(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error) {
	return r.list(ctx,
		"SELECT * FROM task_dependencies WHERE user_id = ? AND depends_on_task_id = ? ORDER BY created_at;",
		userID, taskID)
}

func (r *TaskDependencyRepository) Exists(ctx context.Context, userID, taskID, dependsOnTaskID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM task_dependencies WHERE user_id = ? AND task_id = ? AND depends_on_task_id = ?;",
		userID, taskID, dependsOnTaskID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TaskDependencyRepository) CountByTaskID(ctx context.Context, userID, taskID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM task_dependencies WHERE user_id = ? AND task_id = ?;",
		userID, taskID)
	return count, err
}

func (r *TaskDependencyRepository) CountByDependsOnTaskID(ctx context.Context, userID, taskID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM task_dependencies WHERE user_id = ? AND depends_on_task_id = ?;",
		userID, taskID)
	return count, err
}

func (r *TaskDependencyRepository) list(ctx context.Context, query string, args ...any) ([]domain.TaskDependency, error) {
	var rows []taskDependencyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	dependencies := make([]domain.TaskDependency, 0, len(rows))
	for _, row := range rows {
		dependencies = append(dependencies, domain.TaskDependency{
			ID:              row.ID,
			UserID:          row.UserID,
			TaskID:          row.TaskID,
			DependsOnTaskID: row.DependsOnTaskID,
			CreatedAt:       row.CreatedAt,
		})
	}
	return dependencies, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrDependencyNotFound
	}
	return nil
}
