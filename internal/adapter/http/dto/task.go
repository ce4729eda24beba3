package dto

type TaskItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Notes           *string `json:"notes,omitempty"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	Category        string  `json:"category"`
	DueDate         *string `json:"due_date,omitempty"`
	CompletionDate  *string `json:"completion_date,omitempty"`
	IsChecklistItem bool    `json:"is_checklist_item"`
	RepeatRule      *string `json:"repeat_rule,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`
	HeadingID       *string `json:"heading_id,omitempty"`
	ParentTaskID    *string `json:"parent_task_id,omitempty"`
	ContactID       *string `json:"contact_id,omitempty"`
	Position        int     `json:"position"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	DeletedAt       *string `json:"deleted_at,omitempty"`
}

type CreateTaskRequest struct {
	ID              *string `json:"id" binding:"omitempty,uuid"`
	Title           string  `json:"title" binding:"required,max=255"`
	Notes           *string `json:"notes" binding:"omitempty,max=65535"`
	Priority        *string `json:"priority" binding:"omitempty,oneof=high medium low none"`
	Category        *string `json:"category" binding:"omitempty,oneof=inbox today upcoming anytime someday logbook"`
	DueDate         *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	IsChecklistItem *bool   `json:"is_checklist_item"`
	RepeatRule      *string `json:"repeat_rule" binding:"omitempty,max=255"`
	ProjectID       *string `json:"project_id" binding:"omitempty,uuid"`
	HeadingID       *string `json:"heading_id" binding:"omitempty,uuid"`
	ParentTaskID    *string `json:"parent_task_id" binding:"omitempty,uuid"`
	ContactID       *string `json:"contact_id" binding:"omitempty,uuid"`
	Position        *int    `json:"position" binding:"omitempty,gte=0"`
}

type UpdateTaskRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=255"`
	Notes           *string `json:"notes" binding:"omitempty,max=65535"`
	Priority        *string `json:"priority" binding:"omitempty,oneof=high medium low none"`
	Category        *string `json:"category" binding:"omitempty,oneof=inbox today upcoming anytime someday logbook"`
	DueDate         *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	IsChecklistItem *bool   `json:"is_checklist_item"`
	RepeatRule      *string `json:"repeat_rule" binding:"omitempty,max=255"`
	ProjectID       *string `json:"project_id" binding:"omitempty,uuid"`
	HeadingID       *string `json:"heading_id" binding:"omitempty,uuid"`
	ContactID       *string `json:"contact_id" binding:"omitempty,uuid"`
	Position        *int    `json:"position" binding:"omitempty,gte=0"`
}
