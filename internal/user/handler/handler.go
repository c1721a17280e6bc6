// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/ticketing/internal/response"
	"github.com/festy23/ticketing/internal/user/model"
	"github.com/festy23/ticketing/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetUsers handles GET /user.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Users are successfully retrieved", users)
}

// GetUser handles GET /user/:username.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User is successfully retrieved", user)
}

// CreateUser handles POST /user.
func (h *Handler) CreateUser(c *gin.Context) {
	var dto model.UserDTO
	if !response.BindJSON(c, &dto) {
		return
	}
	if err := h.service.Create(c.Request.Context(), &dto); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User is successfully created")
}

// UpdateUser handles PUT /user.
func (h *Handler) UpdateUser(c *gin.Context) {
	var dto model.UserDTO
	if !response.BindJSON(c, &dto) {
		return
	}
	if err := h.service.Update(c.Request.Context(), &dto); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User is successfully updated", nil)
}

// DeleteUser handles DELETE /user/:username.
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("username")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User is successfully deleted", nil)
}
