package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"omnicrm/internal/core/domain"
	"omnicrm/internal/core/ports"
)

const insertTaskQuery = `
INSERT INTO tasks (
  id, user_id, title, notes, status, priority, category, due_date,
  completion_date, is_checklist_item, repeat_rule, project_id, heading_id,
  parent_task_id, contact_id, position, created_at, updated_at, deleted_at
) VALUES (
  :id, :user_id, :title, :notes, :status, :priority, :category, :due_date,
  :completion_date, :is_checklist_item, :repeat_rule, :project_id, :heading_id,
  :parent_task_id, :contact_id, :position, :created_at, :updated_at, :deleted_at
);
`

const updateTaskQuery = `
UPDATE tasks SET
  title = :title,
  notes = :notes,
  status = :status,
  priority = :priority,
  category = :category,
  due_date = :due_date,
  completion_date = :completion_date,
  is_checklist_item = :is_checklist_item,
  repeat_rule = :repeat_rule,
  project_id = :project_id,
  heading_id = :heading_id,
  parent_task_id = :parent_task_id,
  contact_id = :contact_id,
  position = :position,
  updated_at = :updated_at,
  deleted_at = :deleted_at
WHERE id = :id AND user_id = :user_id;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID              string         `db:"id"`
	UserID          string         `db:"user_id"`
	Title           string         `db:"title"`
	Notes           sql.NullString `db:"notes"`
	Status          string         `db:"status"`
	Priority        string         `db:"priority"`
	Category        string         `db:"category"`
	DueDate         sql.NullTime   `db:"due_date"`
	CompletionDate  sql.NullTime   `db:"completion_date"`
	IsChecklistItem bool           `db:"is_checklist_item"`
	RepeatRule      sql.NullString `db:"repeat_rule"`
	ProjectID       sql.NullString `db:"project_id"`
	HeadingID       sql.NullString `db:"heading_id"`
	ParentTaskID    sql.NullString `db:"parent_task_id"`
	ContactID       sql.NullString `db:"contact_id"`
	Position        int            `db:"position"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       sql.NullTime   `db:"deleted_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) error {
	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToRow(task))
	return err
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	result, err := r.db.NamedExecContext(ctx, updateTaskQuery, mapDomainTaskToRow(task))
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// MySQL also reports zero when nothing changed; confirm the row is gone.
		if _, getErr := r.GetByIDIncludeDeleted(ctx, task.UserID, task.ID); getErr != nil {
			return getErr
		}
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	return r.getByID(ctx, userID, taskID, false)
}

func (r *TaskRepository) GetByIDIncludeDeleted(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	return r.getByID(ctx, userID, taskID, true)
}

func (r *TaskRepository) getByID(ctx context.Context, userID, taskID string, includeDeleted bool) (*domain.Task, error) {
	query := "SELECT * FROM tasks WHERE id = ? AND user_id = ?"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string, filter ports.TaskFilter) ([]domain.Task, error) {
	query := "SELECT * FROM tasks WHERE user_id = ?"
	args := []any{userID}

	if filter.DeletedOnly {
		query += " AND deleted_at IS NOT NULL"
	} else {
		query += " AND deleted_at IS NULL"
	}
	if filter.Category != nil {
		query += " AND category = ?"
		args = append(args, string(*filter.Category))
	}
	if filter.ContactID != nil {
		query += " AND contact_id = ?"
		args = append(args, *filter.ContactID)
	}
	if filter.ProjectID != nil {
		query += " AND project_id = ?"
		args = append(args, *filter.ProjectID)
	}
	query += " ORDER BY position, created_at;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) HardDelete(ctx context.Context, userID, taskID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?;", taskID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapDomainTaskToRow(task *domain.Task) taskRow {
	return taskRow{
		ID:              task.ID,
		UserID:          task.UserID,
		Title:           task.Title,
		Notes:           toNullString(task.Notes),
		Status:          string(task.Status),
		Priority:        string(task.Priority),
		Category:        string(task.Category),
		DueDate:         toNullTime(task.DueDate),
		CompletionDate:  toNullTime(task.CompletionDate),
		IsChecklistItem: task.IsChecklistItem,
		RepeatRule:      toNullString(task.RepeatRule),
		ProjectID:       toNullString(task.ProjectID),
		HeadingID:       toNullString(task.HeadingID),
		ParentTaskID:    toNullString(task.ParentTaskID),
		ContactID:       toNullString(task.ContactID),
		Position:        task.Position,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
		DeletedAt:       toNullTime(task.DeletedAt),
	}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:              row.ID,
		UserID:          row.UserID,
		Title:           row.Title,
		Notes:           fromNullString(row.Notes),
		Status:          domain.TaskStatus(row.Status),
		Priority:        domain.TaskPriority(row.Priority),
		Category:        domain.TaskCategory(row.Category),
		DueDate:         fromNullTime(row.DueDate),
		CompletionDate:  fromNullTime(row.CompletionDate),
		IsChecklistItem: row.IsChecklistItem,
		RepeatRule:      fromNullString(row.RepeatRule),
		ProjectID:       fromNullString(row.ProjectID),
		HeadingID:       fromNullString(row.HeadingID),
		ParentTaskID:    fromNullString(row.ParentTaskID),
		ContactID:       fromNullString(row.ContactID),
		Position:        row.Position,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		DeletedAt:       fromNullTime(row.DeletedAt),
	}
}

func toNullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func fromNullString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	result := value.String
	return &result
}

func toNullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

func fromNullTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	result := value.Time
	return &result
}
