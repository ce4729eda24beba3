package domain_test

import (
	"testing"
	"time"

	"omnicrm/internal/core/domain"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestTask(t *testing.T, input domain.CreateTaskInput) *domain.Task {
	t.Helper()
	if input.UserID == "" {
		input.UserID = "6f1f64a5-2f6b-4f3a-9c43-0a39c1f6f001"
	}
	if input.Title == "" {
		input.Title = "Follow up with client"
	}
	task, err := domain.NewTask(input, now)
	require.NoError(t, err)
	return task
}

func TestNewTask_DefaultsWithoutDueDate(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	require.NotEmpty(t, task.ID)
	require.Equal(t, domain.TaskStatusTodo, task.Status)
	require.Equal(t, domain.TaskPriorityNone, task.Priority)
	require.Equal(t, domain.TaskCategoryInbox, task.Category)
	require.Nil(t, task.CompletionDate)
	require.Equal(t, now, task.CreatedAt)
	require.Equal(t, now, task.UpdatedAt)
}

func TestNewTask_CategoryFromDueDate(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	today := now.Add(2 * time.Hour)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		dueDate  *time.Time
		expected domain.TaskCategory
	}{
		{"overdue lands in today", &yesterday, domain.TaskCategoryToday},
		{"due later today lands in today", &today, domain.TaskCategoryToday},
		{"due tomorrow lands in upcoming", &tomorrow, domain.TaskCategoryUpcoming},
		{"no due date lands in inbox", nil, domain.TaskCategoryInbox},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTestTask(t, domain.CreateTaskInput{DueDate: tt.dueDate})
			require.Equal(t, tt.expected, task.Category)
		})
	}
}

func TestNewTask_ExplicitCategoryWins(t *testing.T) {
	tomorrow := now.AddDate(0, 0, 1)
	someday := domain.TaskCategorySomeday

	task := newTestTask(t, domain.CreateTaskInput{DueDate: &tomorrow, Category: &someday})

	require.Equal(t, domain.TaskCategorySomeday, task.Category)
}

func TestNewTask_KeepsSuppliedID(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{ID: "a8098c1a-f86e-11da-bd1a-00112444be1e"})
	require.Equal(t, "a8098c1a-f86e-11da-bd1a-00112444be1e", task.ID)
}

func TestNewTask_RejectsEmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := domain.NewTask(domain.CreateTaskInput{
			UserID: "6f1f64a5-2f6b-4f3a-9c43-0a39c1f6f001",
			Title:  title,
		}, now)
		require.Error(t, err)
		require.True(t, domain.IsValidationError(err))
	}
}

func TestNewTask_RejectsMissingUser(t *testing.T) {
	_, err := domain.NewTask(domain.CreateTaskInput{Title: "orphan"}, now)
	require.True(t, domain.IsValidationError(err))
}

func TestNewTask_RejectsNegativePosition(t *testing.T) {
	_, err := domain.NewTask(domain.CreateTaskInput{
		UserID:   "6f1f64a5-2f6b-4f3a-9c43-0a39c1f6f001",
		Title:    "badly placed",
		Position: -1,
	}, now)
	require.True(t, domain.IsValidationError(err))
}

func TestComplete_SetsDoneAndLogbook(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	task.Complete(now)

	require.Equal(t, domain.TaskStatusDone, task.Status)
	require.Equal(t, domain.TaskCategoryLogbook, task.Category)
	require.NotNil(t, task.CompletionDate)
	require.Equal(t, now, *task.CompletionDate)
}

func TestComplete_IsIdempotent(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	task.Complete(now)
	first := *task.CompletionDate

	later := now.Add(time.Hour)
	task.Complete(later)

	require.Equal(t, domain.TaskStatusDone, task.Status)
	require.Equal(t, first, *task.CompletionDate)
	require.Equal(t, later, task.UpdatedAt)
}

func TestReopen_RestoresTodoAndRecomputesCategory(t *testing.T) {
	tomorrow := now.AddDate(0, 0, 1)
	task := newTestTask(t, domain.CreateTaskInput{DueDate: &tomorrow})

	task.Complete(now)
	task.Reopen(now)

	require.Equal(t, domain.TaskStatusTodo, task.Status)
	require.Nil(t, task.CompletionDate)
	require.Equal(t, domain.TaskCategoryUpcoming, task.Category)
}

func TestReopen_NoDueDateGoesToInbox(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	task.Complete(now)
	task.Reopen(now)

	require.Equal(t, domain.TaskCategoryInbox, task.Category)
}

func TestCancel_LogbookWithoutCompletionDate(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	task.Cancel(now)

	require.Equal(t, domain.TaskStatusCanceled, task.Status)
	require.Equal(t, domain.TaskCategoryLogbook, task.Category)
	require.Nil(t, task.CompletionDate)
}

func TestCancel_AfterCompleteClearsCompletionDate(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	task.Complete(now)
	task.Cancel(now.Add(time.Minute))

	require.Equal(t, domain.TaskStatusCanceled, task.Status)
	require.Nil(t, task.CompletionDate)
}

func TestMoveToCategory_IntoLogbookCompletes(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	require.NoError(t, task.MoveToCategory(domain.TaskCategoryLogbook, now))

	require.Equal(t, domain.TaskStatusDone, task.Status)
	require.NotNil(t, task.CompletionDate)
}

func TestMoveToCategory_CanceledStaysCanceledInLogbook(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})
	task.Cancel(now)

	require.NoError(t, task.MoveToCategory(domain.TaskCategoryLogbook, now))

	require.Equal(t, domain.TaskStatusCanceled, task.Status)
	require.Nil(t, task.CompletionDate)
}

func TestMoveToCategory_OutOfLogbookReopens(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})
	task.Complete(now)

	require.NoError(t, task.MoveToCategory(domain.TaskCategoryInbox, now))

	require.Equal(t, domain.TaskStatusTodo, task.Status)
	require.Nil(t, task.CompletionDate)
	require.Equal(t, domain.TaskCategoryInbox, task.Category)
}

func TestMoveToCategory_OutOfLogbookReopensCanceled(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})
	task.Cancel(now)

	require.NoError(t, task.MoveToCategory(domain.TaskCategoryAnytime, now))

	require.Equal(t, domain.TaskStatusTodo, task.Status)
	require.Equal(t, domain.TaskCategoryAnytime, task.Category)
}

func TestMoveToCategory_RejectsUnknownCategory(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})
	err := task.MoveToCategory(domain.TaskCategory("backlog"), now)
	require.True(t, domain.IsValidationError(err))
}

func TestSetDueDate_RecomputesCategory(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	tomorrow := now.AddDate(0, 0, 1)
	task.SetDueDate(&tomorrow, now)
	require.Equal(t, domain.TaskCategoryUpcoming, task.Category)

	yesterday := now.AddDate(0, 0, -1)
	task.SetDueDate(&yesterday, now)
	require.Equal(t, domain.TaskCategoryToday, task.Category)
}

func TestSetDueDate_ClearingFallsBackToAnytime(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	task := newTestTask(t, domain.CreateTaskInput{DueDate: &yesterday})
	require.Equal(t, domain.TaskCategoryToday, task.Category)

	task.SetDueDate(nil, now)

	require.Equal(t, domain.TaskCategoryAnytime, task.Category)
	require.Nil(t, task.DueDate)
}

func TestSetDueDate_ClearingKeepsOtherBuckets(t *testing.T) {
	someday := domain.TaskCategorySomeday
	task := newTestTask(t, domain.CreateTaskInput{Category: &someday})

	task.SetDueDate(nil, now)

	require.Equal(t, domain.TaskCategorySomeday, task.Category)
}

func TestSetDueDate_LogbookTaskKeepsBucket(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})
	task.Complete(now)

	tomorrow := now.AddDate(0, 0, 1)
	task.SetDueDate(&tomorrow, now)

	require.Equal(t, domain.TaskCategoryLogbook, task.Category)
	require.Equal(t, domain.TaskStatusDone, task.Status)
	require.Equal(t, &tomorrow, task.DueDate)
}

func TestSoftDelete_AndRestore(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	task.SoftDelete(now)
	require.True(t, task.IsDeleted())
	require.Equal(t, now, *task.DeletedAt)

	// A second soft delete refreshes the timestamp but stays deleted.
	later := now.Add(time.Hour)
	task.SoftDelete(later)
	require.True(t, task.IsDeleted())
	require.Equal(t, later, *task.DeletedAt)

	task.Restore(later)
	require.False(t, task.IsDeleted())
	require.Nil(t, task.DeletedAt)
}

func TestSetPosition_RejectsNegative(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	require.NoError(t, task.SetPosition(4, now))
	require.Equal(t, 4, task.Position)

	err := task.SetPosition(-2, now)
	require.True(t, domain.IsValidationError(err))
	require.Equal(t, 4, task.Position)
}

func TestSetPriority_ValidatesEnum(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	require.NoError(t, task.SetPriority(domain.TaskPriorityHigh, now))
	require.Equal(t, domain.TaskPriorityHigh, task.Priority)

	err := task.SetPriority(domain.TaskPriority("urgent"), now)
	require.True(t, domain.IsValidationError(err))
}

func TestApplyUpdate_MergesAndValidates(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	title := "  Prepare session notes  "
	notes := "bring the intake form"
	priority := domain.TaskPriorityMedium
	position := 2

	err := task.ApplyUpdate(domain.UpdateTaskInput{
		Title:    &title,
		Notes:    &notes,
		NotesSet: true,
		Priority: &priority,
		Position: &position,
	}, now)
	require.NoError(t, err)

	require.Equal(t, "Prepare session notes", task.Title)
	require.Equal(t, notes, *task.Notes)
	require.Equal(t, domain.TaskPriorityMedium, task.Priority)
	require.Equal(t, 2, task.Position)
}

func TestApplyUpdate_RejectsEmptyTitle(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	title := "   "
	err := task.ApplyUpdate(domain.UpdateTaskInput{Title: &title}, now)
	require.True(t, domain.IsValidationError(err))
}

func TestApplyUpdate_CategoryChangeKeepsLogbookCoupling(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	logbook := domain.TaskCategoryLogbook
	require.NoError(t, task.ApplyUpdate(domain.UpdateTaskInput{Category: &logbook}, now))
	require.Equal(t, domain.TaskStatusDone, task.Status)
	require.NotNil(t, task.CompletionDate)

	inbox := domain.TaskCategoryInbox
	require.NoError(t, task.ApplyUpdate(domain.UpdateTaskInput{Category: &inbox}, now))
	require.Equal(t, domain.TaskStatusTodo, task.Status)
	require.Nil(t, task.CompletionDate)
}

func TestApplyUpdate_ProjectMove(t *testing.T) {
	task := newTestTask(t, domain.CreateTaskInput{})

	projectID := "0d6c9df2-40ba-4b56-9c43-27be12f8a101"
	headingID := "0d6c9df2-40ba-4b56-9c43-27be12f8a102"
	err := task.ApplyUpdate(domain.UpdateTaskInput{
		ProjectID:      &projectID,
		HeadingID:      &headingID,
		ProjectMoveSet: true,
	}, now)
	require.NoError(t, err)

	require.Equal(t, projectID, *task.ProjectID)
	require.Equal(t, headingID, *task.HeadingID)
	// Moving container does not touch lifecycle state.
	require.Equal(t, domain.TaskStatusTodo, task.Status)
	require.Equal(t, domain.TaskCategoryInbox, task.Category)
}

func TestCategoryForDueDate(t *testing.T) {
	endOfDay := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	startOfDay := time.Date(2026, 3, 10, 0, 0, 1, 0, time.UTC)
	nextMidnight := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	require.Equal(t, domain.TaskCategoryInbox, domain.CategoryForDueDate(nil, now))
	require.Equal(t, domain.TaskCategoryToday, domain.CategoryForDueDate(&endOfDay, now))
	require.Equal(t, domain.TaskCategoryToday, domain.CategoryForDueDate(&startOfDay, now))
	require.Equal(t, domain.TaskCategoryUpcoming, domain.CategoryForDueDate(&nextMidnight, now))
}
