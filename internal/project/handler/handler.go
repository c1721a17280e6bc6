// Package handler provides HTTP handlers for project endpoints.
package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/project/model"
	"github.com/festy23/ticketing/internal/project/service"
	"github.com/festy23/ticketing/internal/response"
)

// Handler handles HTTP requests for project endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new project handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetProjects handles GET /project.
func (h *Handler) GetProjects(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Projects are successfully retrieved", projects)
}

// GetProject handles GET /project/:code.
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.service.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project is successfully retrieved", project)
}

// CreateProject handles POST /project. A manager creating a project without
// an assigned manager becomes its manager.
func (h *Handler) CreateProject(c *gin.Context) {
	var dto model.ProjectDTO
	if !response.BindJSON(c, &dto) {
		return
	}

	principal, err := auth.RequirePrincipal(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if dto.AssignedManager == "" && principal.HasRole(auth.RoleManager) {
		dto.AssignedManager = principal.Username
	}

	if err := h.service.Create(c.Request.Context(), &dto); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Project is successfully created")
}

// UpdateProject handles PUT /project.
func (h *Handler) UpdateProject(c *gin.Context) {
	var dto model.ProjectDTO
	if !response.BindJSON(c, &dto) {
		return
	}
	if err := h.service.Update(c.Request.Context(), &dto); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project is successfully updated", nil)
}

// DeleteProject handles DELETE /project/:code.
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project is successfully deleted", nil)
}

// GetProjectStatus handles GET /project/manager/project-status.
func (h *Handler) GetProjectStatus(c *gin.Context) {
	principal, err := auth.RequirePrincipal(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	projects, err := h.service.ListDetails(c.Request.Context(), principal.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project is successfully retrieved", projects)
}

// CompleteProject handles PUT /project/manager/complete/:code.
func (h *Handler) CompleteProject(c *gin.Context) {
	if err := h.service.Complete(c.Request.Context(), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project is successfully completed", nil)
}
