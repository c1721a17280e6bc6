// Package router provides user module routes registration.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/endpoint"
	projectRepository "github.com/festy23/ticketing/internal/project/repository"
	taskRepository "github.com/festy23/ticketing/internal/task/repository"
	"github.com/festy23/ticketing/internal/user/handler"
	"github.com/festy23/ticketing/internal/user/repository"
	"github.com/festy23/ticketing/internal/user/service"
)

// Routes is the user endpoint table.
func Routes(h *handler.Handler) []endpoint.Route {
	return []endpoint.Route{
		{Method: http.MethodGet, Path: "", Roles: []auth.Role{auth.RoleManager, auth.RoleAdmin}, Handler: h.GetUsers},
		{Method: http.MethodGet, Path: "/:username", Roles: []auth.Role{auth.RoleAdmin}, Handler: h.GetUser},
		{Method: http.MethodPost, Path: "", Roles: []auth.Role{auth.RoleAdmin}, Handler: h.CreateUser},
		{Method: http.MethodPut, Path: "", Roles: []auth.Role{auth.RoleAdmin}, Handler: h.UpdateUser},
		{Method: http.MethodDelete, Path: "/:username", Roles: []auth.Role{auth.RoleAdmin}, Handler: h.DeleteUser},
	}
}

// RegisterRoutes wires the user module and mounts it under rg/user.
// Observers run after the role gate on every route.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger, observers ...gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, projectRepository.New(db, logger), taskRepository.New(db, logger), logger)
	Mount(rg, handler.New(svc, logger), observers...)
}

// Mount registers the user endpoint table for h under rg/user.
func Mount(rg *gin.RouterGroup, h *handler.Handler, observers ...gin.HandlerFunc) {
	endpoint.Register(rg.Group("/user"), Routes(h), observers...)
}
