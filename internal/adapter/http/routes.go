package http

import (
	"omnicrm/internal/adapter/http/handlers"
	"omnicrm/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler, dependencyHandler *handlers.DependencyHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	tasks := api.Group("/tasks")
	tasks.Use(middleware.TenantMiddleware())
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.POST("/:id/restore", taskHandler.RestoreTask)
		tasks.DELETE("/:id/purge", taskHandler.PurgeTask)

		tasks.POST("/:id/complete", taskHandler.CompleteTask)
		tasks.POST("/:id/reopen", taskHandler.ReopenTask)
		tasks.POST("/:id/cancel", taskHandler.CancelTask)

		tasks.POST("/:id/dependencies", dependencyHandler.CreateDependency)
		tasks.GET("/:id/dependencies", dependencyHandler.ListDependencies)
		tasks.GET("/:id/dependents", dependencyHandler.ListDependents)
		tasks.DELETE("/:id/dependencies/:dependsOnID", dependencyHandler.DeleteDependency)
		tasks.GET("/:id/dependencies/status", dependencyHandler.DependencyStatus)
	}
}
