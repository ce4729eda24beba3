package mapper

import (
	"time"

	"omnicrm/internal/adapter/http/dto"
	"omnicrm/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:              task.ID,
		Title:           task.Title,
		Status:          string(task.Status),
		Priority:        string(task.Priority),
		Category:        string(task.Category),
		IsChecklistItem: task.IsChecklistItem,
		Position:        task.Position,
		CreatedAt:       task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Notes != nil {
		value := *task.Notes
		item.Notes = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if task.CompletionDate != nil {
		value := task.CompletionDate.Format(time.RFC3339)
		item.CompletionDate = &value
	}

	if task.RepeatRule != nil {
		value := *task.RepeatRule
		item.RepeatRule = &value
	}

	if task.ProjectID != nil {
		value := *task.ProjectID
		item.ProjectID = &value
	}

	if task.HeadingID != nil {
		value := *task.HeadingID
		item.HeadingID = &value
	}

	if task.ParentTaskID != nil {
		value := *task.ParentTaskID
		item.ParentTaskID = &value
	}

	if task.ContactID != nil {
		value := *task.ContactID
		item.ContactID = &value
	}

	if task.DeletedAt != nil {
		value := task.DeletedAt.Format(time.RFC3339)
		item.DeletedAt = &value
	}

	return item
}
