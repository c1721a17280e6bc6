// Package endpoint declares role-gated routes as static tables.
package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/middleware"
)

// Route is one row of an endpoint table.
type Route struct {
	Method  string
	Path    string
	Roles   []auth.Role
	Handler gin.HandlerFunc
}

// Register mounts routes on g. Each route runs its role gate first, then
// observers, then the handler, so rejected calls never reach an observer.
func Register(g gin.IRoutes, routes []Route, observers ...gin.HandlerFunc) {
	for _, rt := range routes {
		chain := make([]gin.HandlerFunc, 0, len(observers)+2)
		chain = append(chain, middleware.RequireRoles(rt.Roles...))
		chain = append(chain, observers...)
		chain = append(chain, rt.Handler)
		g.Handle(rt.Method, rt.Path, chain...)
	}
}
