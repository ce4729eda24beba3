package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCanceled   TaskStatus = "canceled"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNone   TaskPriority = "none"
)

// TaskCategory is the workflow bucket a task sits in. It is orthogonal to
// TaskStatus except for logbook, which is the completed-tasks bucket: a task
// moved into the logbook is closed, and a closed task lives in the logbook.
type TaskCategory string

const (
	TaskCategoryInbox    TaskCategory = "inbox"
	TaskCategoryToday    TaskCategory = "today"
	TaskCategoryUpcoming TaskCategory = "upcoming"
	TaskCategoryAnytime  TaskCategory = "anytime"
	TaskCategorySomeday  TaskCategory = "someday"
	TaskCategoryLogbook  TaskCategory = "logbook"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusCanceled:
		return true
	}
	return false
}

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow, TaskPriorityNone:
		return true
	}
	return false
}

func (c TaskCategory) Valid() bool {
	switch c {
	case TaskCategoryInbox, TaskCategoryToday, TaskCategoryUpcoming,
		TaskCategoryAnytime, TaskCategorySomeday, TaskCategoryLogbook:
		return true
	}
	return false
}

type Task struct {
	ID              string
	UserID          string
	Title           string
	Notes           *string
	Status          TaskStatus
	Priority        TaskPriority
	Category        TaskCategory
	DueDate         *time.Time
	CompletionDate  *time.Time
	IsChecklistItem bool
	RepeatRule      *string
	ProjectID       *string
	HeadingID       *string
	ParentTaskID    *string
	ContactID       *string
	Position        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

type CreateTaskInput struct {
	ID              string
	UserID          string
	Title           string
	Notes           *string
	Priority        *TaskPriority
	Category        *TaskCategory
	DueDate         *time.Time
	IsChecklistItem bool
	RepeatRule      *string
	ProjectID       *string
	HeadingID       *string
	ParentTaskID    *string
	ContactID       *string
	Position        int
}

type UpdateTaskInput struct {
	Title           *string
	Notes           *string
	NotesSet        bool
	Priority        *TaskPriority
	Category        *TaskCategory
	DueDate         *time.Time
	DueDateSet      bool
	IsChecklistItem *bool
	RepeatRule      *string
	RepeatRuleSet   bool
	ContactID       *string
	ContactIDSet    bool
	ProjectID       *string
	HeadingID       *string
	ProjectMoveSet  bool
	Position        *int
}

// CategoryForDueDate derives the workflow bucket from a due date: overdue or
// due today lands in today, a future date in upcoming, no date in inbox.
// Every call site that recomputes a category from a due date goes through
// here.
func CategoryForDueDate(dueDate *time.Time, now time.Time) TaskCategory {
	if dueDate == nil {
		return TaskCategoryInbox
	}
	if dateOf(*dueDate).After(dateOf(now)) {
		return TaskCategoryUpcoming
	}
	return TaskCategoryToday
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// NewTask builds a task in its initial state. The ID is generated when the
// caller did not supply one. An explicit category wins over the due-date
// derivation; without one the category follows CategoryForDueDate.
func NewTask(input CreateTaskInput, now time.Time) (*Task, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	priority := TaskPriorityNone
	if input.Priority != nil {
		priority = *input.Priority
	}

	category := CategoryForDueDate(input.DueDate, now)
	if input.Category != nil {
		category = *input.Category
	}

	task := &Task{
		ID:              id,
		UserID:          input.UserID,
		Title:           strings.TrimSpace(input.Title),
		Notes:           input.Notes,
		Status:          TaskStatusTodo,
		Priority:        priority,
		Category:        category,
		DueDate:         input.DueDate,
		IsChecklistItem: input.IsChecklistItem,
		RepeatRule:      input.RepeatRule,
		ProjectID:       input.ProjectID,
		HeadingID:       input.HeadingID,
		ParentTaskID:    input.ParentTaskID,
		ContactID:       input.ContactID,
		Position:        input.Position,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

func (t *Task) Validate() error {
	if t.ID == "" {
		return NewValidationError("id", "must not be empty")
	}
	if t.UserID == "" {
		return NewValidationError("user_id", "must not be empty")
	}
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "must not be empty")
	}
	if !t.Status.Valid() {
		return NewValidationError("status", "unknown value")
	}
	if !t.Priority.Valid() {
		return NewValidationError("priority", "unknown value")
	}
	if !t.Category.Valid() {
		return NewValidationError("category", "unknown value")
	}
	if t.Position < 0 {
		return NewValidationError("position", "must not be negative")
	}
	return nil
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusDone
}

func (t *Task) IsDeleted() bool {
	return t.DeletedAt != nil
}

// Complete marks the task done and files it in the logbook. Completing an
// already-done task only refreshes UpdatedAt.
func (t *Task) Complete(now time.Time) {
	if t.Status != TaskStatusDone {
		t.Status = TaskStatusDone
		completedAt := now
		t.CompletionDate = &completedAt
	}
	t.Category = TaskCategoryLogbook
	t.UpdatedAt = now
}

// Reopen puts the task back to todo and recomputes its bucket from the due
// date, as if it had just been created.
func (t *Task) Reopen(now time.Time) {
	t.Status = TaskStatusTodo
	t.CompletionDate = nil
	t.Category = CategoryForDueDate(t.DueDate, now)
	t.UpdatedAt = now
}

// Cancel files the task in the logbook without marking it completed.
func (t *Task) Cancel(now time.Time) {
	t.Status = TaskStatusCanceled
	t.CompletionDate = nil
	t.Category = TaskCategoryLogbook
	t.UpdatedAt = now
}

func (t *Task) SoftDelete(now time.Time) {
	deletedAt := now
	t.DeletedAt = &deletedAt
	t.UpdatedAt = now
}

func (t *Task) Restore(now time.Time) {
	t.DeletedAt = nil
	t.UpdatedAt = now
}

func (t *Task) SetPosition(position int, now time.Time) error {
	if position < 0 {
		return NewValidationError("position", "must not be negative")
	}
	t.Position = position
	t.UpdatedAt = now
	return nil
}

func (t *Task) SetPriority(priority TaskPriority, now time.Time) error {
	if !priority.Valid() {
		return NewValidationError("priority", "unknown value")
	}
	t.Priority = priority
	t.UpdatedAt = now
	return nil
}

// MoveToCategory keeps category and completion state consistent: moving into
// the logbook completes an open task, moving out of it reopens a closed one.
// A canceled task moved into the logbook stays canceled rather than being
// promoted to done.
func (t *Task) MoveToCategory(category TaskCategory, now time.Time) error {
	if !category.Valid() {
		return NewValidationError("category", "unknown value")
	}

	if category == TaskCategoryLogbook {
		if t.Status == TaskStatusTodo || t.Status == TaskStatusInProgress {
			t.Status = TaskStatusDone
			completedAt := now
			t.CompletionDate = &completedAt
		}
	} else if t.Status == TaskStatusDone || t.Status == TaskStatusCanceled {
		t.Status = TaskStatusTodo
		t.CompletionDate = nil
	}

	t.Category = category
	t.UpdatedAt = now
	return nil
}

func (t *Task) MoveToProject(projectID, headingID *string, now time.Time) {
	t.ProjectID = projectID
	t.HeadingID = headingID
	t.UpdatedAt = now
}

// SetDueDate updates the due date and recomputes the bucket for open tasks:
// a new date lands in today or upcoming, clearing the date from one of those
// buckets falls back to anytime. Logbook tasks keep their bucket.
func (t *Task) SetDueDate(dueDate *time.Time, now time.Time) {
	t.DueDate = dueDate

	if t.Status != TaskStatusDone && t.Status != TaskStatusCanceled {
		if dueDate != nil {
			t.Category = CategoryForDueDate(dueDate, now)
		} else if t.Category == TaskCategoryToday || t.Category == TaskCategoryUpcoming {
			t.Category = TaskCategoryAnytime
		}
	}

	t.UpdatedAt = now
}

// ApplyUpdate merges a partial update and re-validates the result. Category
// and due-date changes go through the same transitions the dedicated
// endpoints use, so the logbook coupling holds for updates too.
func (t *Task) ApplyUpdate(input UpdateTaskInput, now time.Time) error {
	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.NotesSet {
		t.Notes = input.Notes
	}
	if input.Priority != nil {
		if err := t.SetPriority(*input.Priority, now); err != nil {
			return err
		}
	}
	if input.IsChecklistItem != nil {
		t.IsChecklistItem = *input.IsChecklistItem
	}
	if input.RepeatRuleSet {
		t.RepeatRule = input.RepeatRule
	}
	if input.ContactIDSet {
		t.ContactID = input.ContactID
	}
	if input.ProjectMoveSet {
		t.MoveToProject(input.ProjectID, input.HeadingID, now)
	}
	if input.Position != nil {
		if err := t.SetPosition(*input.Position, now); err != nil {
			return err
		}
	}
	if input.DueDateSet {
		t.SetDueDate(input.DueDate, now)
	}
	if input.Category != nil {
		if err := t.MoveToCategory(*input.Category, now); err != nil {
			return err
		}
	}

	t.UpdatedAt = now
	return t.Validate()
}
