// Package router provides project module routes registration.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/endpoint"
	"github.com/festy23/ticketing/internal/project/handler"
	"github.com/festy23/ticketing/internal/project/repository"
	"github.com/festy23/ticketing/internal/project/service"
	taskRepository "github.com/festy23/ticketing/internal/task/repository"
	userRepository "github.com/festy23/ticketing/internal/user/repository"
)

var (
	managers          = []auth.Role{auth.RoleManager}
	managersAndAdmins = []auth.Role{auth.RoleManager, auth.RoleAdmin}
)

// Routes is the project endpoint table.
func Routes(h *handler.Handler) []endpoint.Route {
	return []endpoint.Route{
		{Method: http.MethodGet, Path: "", Roles: managers, Handler: h.GetProjects},
		{Method: http.MethodGet, Path: "/:code", Roles: managers, Handler: h.GetProject},
		{Method: http.MethodPost, Path: "", Roles: managersAndAdmins, Handler: h.CreateProject},
		{Method: http.MethodPut, Path: "", Roles: managers, Handler: h.UpdateProject},
		{Method: http.MethodDelete, Path: "/:code", Roles: managers, Handler: h.DeleteProject},
		{Method: http.MethodGet, Path: "/manager/project-status", Roles: managers, Handler: h.GetProjectStatus},
		{Method: http.MethodPut, Path: "/manager/complete/:code", Roles: managers, Handler: h.CompleteProject},
	}
}

// RegisterRoutes wires the project module and mounts it under rg/project.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger, observers ...gin.HandlerFunc) {
	svc := service.New(
		repository.New(db, logger),
		taskRepository.New(db, logger),
		userRepository.New(db, logger),
		db,
		logger,
	)
	Mount(rg, handler.New(svc, logger), observers...)
}

// Mount registers the project endpoint table for h under rg/project.
func Mount(rg *gin.RouterGroup, h *handler.Handler, observers ...gin.HandlerFunc) {
	endpoint.Register(rg.Group("/project"), Routes(h), observers...)
}
