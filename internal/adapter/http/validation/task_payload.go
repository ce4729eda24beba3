package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"omnicrm/internal/adapter/http/dto"
	"omnicrm/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(userID string, req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "position") && req.Position == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		UserID:       userID,
		Title:        title,
		Notes:        req.Notes,
		RepeatRule:   req.RepeatRule,
		ProjectID:    req.ProjectID,
		HeadingID:    req.HeadingID,
		ParentTaskID: req.ParentTaskID,
		ContactID:    req.ContactID,
	}

	if req.ID != nil {
		input.ID = *req.ID
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Category != nil {
		category := domain.TaskCategory(*req.Category)
		input.Category = &category
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = dueDate
	}
	if req.IsChecklistItem != nil {
		input.IsChecklistItem = *req.IsChecklistItem
	}
	if req.Position != nil {
		input.Position = *req.Position
	}

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	var category *domain.TaskCategory
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Category != nil {
		value := domain.TaskCategory(*req.Category)
		category = &value
	}

	notesSet := hasJSONField(raw, "notes")
	if notesSet && !isJSONNull(raw["notes"]) && req.Notes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := parseDueDate(*req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = parsed
	}

	repeatRuleSet := hasJSONField(raw, "repeat_rule")
	if repeatRuleSet && !isJSONNull(raw["repeat_rule"]) && req.RepeatRule == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	contactIDSet := hasJSONField(raw, "contact_id")
	if contactIDSet && !isJSONNull(raw["contact_id"]) && req.ContactID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	// A project move is one operation: heading only makes sense inside the
	// project it belongs to.
	projectMoveSet := hasJSONField(raw, "project_id") || hasJSONField(raw, "heading_id")
	if hasJSONField(raw, "project_id") && !isJSONNull(raw["project_id"]) && req.ProjectID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "heading_id") && !isJSONNull(raw["heading_id"]) && req.HeadingID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "position") && req.Position == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:           title,
		Notes:           req.Notes,
		NotesSet:        notesSet,
		Priority:        priority,
		Category:        category,
		DueDate:         dueDate,
		DueDateSet:      dueDateSet,
		IsChecklistItem: req.IsChecklistItem,
		RepeatRule:      req.RepeatRule,
		RepeatRuleSet:   repeatRuleSet,
		ContactID:       req.ContactID,
		ContactIDSet:    contactIDSet,
		ProjectID:       req.ProjectID,
		HeadingID:       req.HeadingID,
		ProjectMoveSet:  projectMoveSet,
		Position:        req.Position,
	}, nil
}

func parseDueDate(value string) (*time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range []string{
		"title", "notes", "priority", "category", "due_date",
		"is_checklist_item", "repeat_rule", "contact_id",
		"project_id", "heading_id", "position",
	} {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
