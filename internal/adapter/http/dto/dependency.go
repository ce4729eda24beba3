package dto

type DependencyItem struct {
	ID              string `json:"id"`
	TaskID          string `json:"task_id"`
	DependsOnTaskID string `json:"depends_on_task_id"`
	CreatedAt       string `json:"created_at"`
}

type CreateDependencyRequest struct {
	DependsOnTaskID string `json:"depends_on_task_id" binding:"required,uuid"`
}

// DependencyStatus answers the gating question for one task.
type DependencyStatus struct {
	TaskID                   string `json:"task_id"`
	AllDependenciesCompleted bool   `json:"all_dependencies_completed"`
}
