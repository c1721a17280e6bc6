// Package handler provides HTTP handlers for task endpoints.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/response"
	"github.com/festy23/ticketing/internal/task/model"
	"github.com/festy23/ticketing/internal/task/service"
)

// Handler handles HTTP requests for task endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new task handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetTasks handles GET /task.
func (h *Handler) GetTasks(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tasks are successfully retrieved", tasks)
}

// GetTask handles GET /task/:id.
func (h *Handler) GetTask(c *gin.Context) {
	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Task is successfully retrieved", task)
}

// CreateTask handles POST /task.
func (h *Handler) CreateTask(c *gin.Context) {
	var dto model.TaskDTO
	if !response.BindJSON(c, &dto) {
		return
	}
	if err := h.service.Create(c.Request.Context(), &dto); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Task is successfully created")
}

// UpdateTask handles PUT /task.
func (h *Handler) UpdateTask(c *gin.Context) {
	var dto model.TaskDTO
	if !response.BindJSON(c, &dto) {
		return
	}
	if err := h.service.Update(c.Request.Context(), &dto); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Task is successfully updated", nil)
}

// DeleteTask handles DELETE /task/:id.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Task is successfully deleted", nil)
}

// GetPendingTasks handles GET /task/employee/pending-tasks.
func (h *Handler) GetPendingTasks(c *gin.Context) {
	principal, err := auth.RequirePrincipal(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.service.ListPending(c.Request.Context(), principal.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tasks are successfully retrieved", tasks)
}

// GetArchivedTasks handles GET /task/employee/archive.
func (h *Handler) GetArchivedTasks(c *gin.Context) {
	principal, err := auth.RequirePrincipal(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.service.ListArchive(c.Request.Context(), principal.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tasks are successfully retrieved", tasks)
}

// UpdateOwnTask handles PUT /task/employee/update.
func (h *Handler) UpdateOwnTask(c *gin.Context) {
	var dto model.TaskDTO
	if !response.BindJSON(c, &dto) {
		return
	}

	principal, err := auth.RequirePrincipal(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), principal.Username, &dto); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Task is successfully updated", nil)
}

func taskID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.ErrInvalidTaskID
	}
	return id, nil
}
