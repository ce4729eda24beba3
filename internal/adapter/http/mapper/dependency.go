package mapper

import (
	"time"

	"omnicrm/internal/adapter/http/dto"
	"omnicrm/internal/core/domain"
)

func ToDependencyItems(dependencies []domain.TaskDependency) []dto.DependencyItem {
	items := make([]dto.DependencyItem, 0, len(dependencies))
	for _, dependency := range dependencies {
		items = append(items, ToDependencyItem(dependency))
	}
	return items
}

func ToDependencyItem(dependency domain.TaskDependency) dto.DependencyItem {
	return dto.DependencyItem{
		ID:              dependency.ID,
		TaskID:          dependency.TaskID,
		DependsOnTaskID: dependency.DependsOnTaskID,
		CreatedAt:       dependency.CreatedAt.Format(time.RFC3339),
	}
}
