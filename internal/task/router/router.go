// Package router provides task module routes registration.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/endpoint"
	projectRepository "github.com/festy23/ticketing/internal/project/repository"
	"github.com/festy23/ticketing/internal/task/handler"
	"github.com/festy23/ticketing/internal/task/repository"
	"github.com/festy23/ticketing/internal/task/service"
	userRepository "github.com/festy23/ticketing/internal/user/repository"
)

var (
	managers  = []auth.Role{auth.RoleManager}
	employees = []auth.Role{auth.RoleEmployee}
)

// Routes is the task endpoint table.
func Routes(h *handler.Handler) []endpoint.Route {
	return []endpoint.Route{
		{Method: http.MethodGet, Path: "", Roles: managers, Handler: h.GetTasks},
		{Method: http.MethodGet, Path: "/:id", Roles: managers, Handler: h.GetTask},
		{Method: http.MethodPost, Path: "", Roles: managers, Handler: h.CreateTask},
		{Method: http.MethodPut, Path: "", Roles: managers, Handler: h.UpdateTask},
		{Method: http.MethodDelete, Path: "/:id", Roles: managers, Handler: h.DeleteTask},
		{Method: http.MethodGet, Path: "/employee/pending-tasks", Roles: employees, Handler: h.GetPendingTasks},
		{Method: http.MethodPut, Path: "/employee/update", Roles: employees, Handler: h.UpdateOwnTask},
		{Method: http.MethodGet, Path: "/employee/archive", Roles: employees, Handler: h.GetArchivedTasks},
	}
}

// RegisterRoutes wires the task module and mounts it under rg/task.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger, observers ...gin.HandlerFunc) {
	svc := service.New(
		repository.New(db, logger),
		projectRepository.New(db, logger),
		userRepository.New(db, logger),
		logger,
	)
	Mount(rg, handler.New(svc, logger), observers...)
}

// Mount registers the task endpoint table for h under rg/task.
func Mount(rg *gin.RouterGroup, h *handler.Handler, observers ...gin.HandlerFunc) {
	endpoint.Register(rg.Group("/task"), Routes(h), observers...)
}
