package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/ticketing/internal/apperror"
	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/response"
)

type projectHandler struct{}

func (projectHandler) GetProject(c *gin.Context) {
	response.OK(c, "Project is successfully retrieved", map[string]string{"projectCode": c.Param("code")})
}

func (projectHandler) DeleteProject(c *gin.Context) {
	response.Error(c, apperror.NotFound("project not found"))
}

func (projectHandler) Explode(*gin.Context) {
	panic("kaboom")
}

func withPrincipal(p auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}


func TestInterceptor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := projectHandler{}
	manager := auth.Principal{Username: "mike", Roles: []auth.Role{auth.RoleManager}}

	t.Run("success", func(t *testing.T) {
		logger, logs := observedLogger()
		r := gin.New()
		r.GET("/project/:code", withPrincipal(manager), Interceptor(logger), h.GetProject)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/project/PRJ1", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, "before", entries[0].Message)
		assert.Equal(t, "after returning", entries[1].Message)

		fields := entries[0].ContextMap()
		assert.Equal(t, "mike", fields["user"])
		assert.Equal(t, "middleware.projectHandler.GetProject GET /project/:code", fields["method"])
		assert.Contains(t, entries[1].ContextMap()["result"], "Project is successfully retrieved")
	})

	t.Run("error", func(t *testing.T) {
		logger, logs := observedLogger()
		r := gin.New()
		r.DELETE("/project/:code", withPrincipal(manager), Interceptor(logger), h.DeleteProject)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/project/NOPE", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, "after throwing", entries[1].Message)
		assert.Equal(t, "project not found", entries[1].ContextMap()["error"])
	})

	t.Run("panic is logged and re-raised", func(t *testing.T) {
		logger, logs := observedLogger()
		r := gin.New()
		r.Use(Recovery(logger))
		r.GET("/boom", withPrincipal(manager), Interceptor(logger), h.Explode)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		assert.Equal(t, 1, logs.FilterMessage("after throwing").Len())
		assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
		assert.Zero(t, logs.FilterMessage("after returning").Len())
	})

	t.Run("unresolved principal does not abort", func(t *testing.T) {
		logger, logs := observedLogger()
		r := gin.New()
		r.GET("/project/:code", Interceptor(logger), h.GetProject)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/project/PRJ1", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, 1, logs.FilterMessage("principal unresolved").Len())
		before := logs.FilterMessage("before").All()
		require.Len(t, before, 1)
		assert.Equal(t, "<unresolved>", before[0].ContextMap()["user"])
	})
}

func TestShortHandlerName(t *testing.T) {
	assert.Equal(t, "handler.(*Handler).GetProjects",
		shortHandlerName("github.com/festy23/ticketing/internal/project/handler.(*Handler).GetProjects-fm"))
	assert.Equal(t, "main.index", shortHandlerName("main.index"))
}
