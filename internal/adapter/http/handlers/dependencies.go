package handlers

import (
	"context"
	"errors"
	"net/http"

	"omnicrm/internal/adapter/http/dto"
	"omnicrm/internal/adapter/http/mapper"
	"omnicrm/internal/adapter/http/middleware"
	"omnicrm/internal/core/domain"
	"omnicrm/internal/core/ports"
	"omnicrm/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DependencyHandler struct {
	dependencyService ports.TaskDependencyService
}

func NewDependencyHandler(dependencyService ports.TaskDependencyService) *DependencyHandler {
	return &DependencyHandler{dependencyService: dependencyService}
}

// CreateDependency links the task in the path to the task in the body. Each
// rejection reason gets its own message so the client can tell a cycle from a
// duplicate.
func (h *DependencyHandler) CreateDependency(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.CreateDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	dependency, err := h.dependencyService.CreateDependency(c.Request.Context(), userID, taskID, req.DependsOnTaskID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfDependency):
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgSelfDependency, lang),
			)
		case errors.Is(err, domain.ErrCircularDependency):
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgCircularDependency, lang),
			)
		case errors.Is(err, domain.ErrDuplicateDependency):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateDependency, lang),
			)
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case domain.IsValidationError(err):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
		default:
			zap.L().Error("failed to create dependency",
				zap.String("task_id", taskID),
				zap.String("depends_on_task_id", req.DependsOnTaskID),
				zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateDependency, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDependencyItem(*dependency))
}

// ListDependencies returns what the task depends on.
func (h *DependencyHandler) ListDependencies(c *gin.Context) {
	h.list(c, "failed to list dependencies", h.dependencyService.ListDependenciesForTask)
}

// ListDependents returns what depends on the task.
func (h *DependencyHandler) ListDependents(c *gin.Context) {
	h.list(c, "failed to list dependents", h.dependencyService.ListTasksDependingOn)
}

func (h *DependencyHandler) DeleteDependency(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	dependsOnTaskID := c.Param("dependsOnID")
	if _, err := uuid.Parse(dependsOnTaskID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	err := h.dependencyService.DeleteDependencyByPair(c.Request.Context(), userID, taskID, dependsOnTaskID)
	if err != nil {
		if errors.Is(err, domain.ErrDependencyNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgDependencyNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete dependency",
			zap.String("task_id", taskID),
			zap.String("depends_on_task_id", dependsOnTaskID),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteDependency, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// DependencyStatus reports whether the task is gated-complete: every task it
// depends on is done.
func (h *DependencyHandler) DependencyStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	completed, err := h.dependencyService.AreAllDependenciesCompleted(c.Request.Context(), userID, taskID)
	if err != nil {
		zap.L().Error("failed to compute dependency status", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDependencyStatus, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DependencyStatus{
		TaskID:                   taskID,
		AllDependenciesCompleted: completed,
	})
}

func (h *DependencyHandler) list(c *gin.Context, logMsg string, query func(ctx context.Context, userID, taskID string) ([]domain.TaskDependency, error)) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	dependencies, err := query(c.Request.Context(), userID, taskID)
	if err != nil {
		zap.L().Error(logMsg, zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListDependencies, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDependencyItems(dependencies))
}
