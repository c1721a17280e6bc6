package endpoint

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/festy23/ticketing/internal/auth"
)

func TestRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var calls []string
	observer := func(c *gin.Context) {
		calls = append(calls, "observer")
		c.Next()
	}
	routes := []Route{
		{Method: http.MethodGet, Path: "/items", Roles: []auth.Role{auth.RoleManager}, Handler: func(c *gin.Context) {
			calls = append(calls, "handler")
			c.Status(http.StatusOK)
		}},
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		role := auth.Role(c.GetHeader("X-Role"))
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), auth.Principal{Username: "u", Roles: []auth.Role{role}}))
		c.Next()
	})
	Register(r, routes, observer)

	t.Run("allowed", func(t *testing.T) {
		calls = nil
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		req.Header.Set("X-Role", "Manager")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"observer", "handler"}, calls)
	})

	t.Run("rejected before observers", func(t *testing.T) {
		calls = nil
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		req.Header.Set("X-Role", "Employee")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, calls)
	})
}
