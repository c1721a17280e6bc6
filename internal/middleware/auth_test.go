package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/festy23/ticketing/internal/auth"
)

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(token string) (auth.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(auth.Principal), args.Error(1)
}

var _ TokenVerifier = (*mockVerifier)(nil)

func setupAuthRouter(v TokenVerifier, roles ...auth.Role) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.Use(Authenticate(v))
	r.GET("/guarded", RequireRoles(roles...), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	return r, &reached
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		v := new(mockVerifier)
		r, reached := setupAuthRouter(v, auth.RoleManager)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"missing bearer token","status":"UNAUTHORIZED"}`, w.Body.String())
		assert.False(t, *reached)
		v.AssertNotCalled(t, "Verify", mock.Anything)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		v := new(mockVerifier)
		r, _ := setupAuthRouter(v, auth.RoleManager)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("verifier rejects", func(t *testing.T) {
		v := new(mockVerifier)
		v.On("Verify", "bad").Return(auth.Principal{}, auth.ErrInvalidToken)
		r, reached := setupAuthRouter(v, auth.RoleManager)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer bad")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		roles    []auth.Role
		required []auth.Role
		code     int
	}{
		{"matching role", []auth.Role{auth.RoleManager}, []auth.Role{auth.RoleManager}, http.StatusOK},
		{"any of several", []auth.Role{auth.RoleAdmin}, []auth.Role{auth.RoleManager, auth.RoleAdmin}, http.StatusOK},
		{"missing role", []auth.Role{auth.RoleEmployee}, []auth.Role{auth.RoleManager}, http.StatusForbidden},
		{"no roles", nil, []auth.Role{auth.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := new(mockVerifier)
			v.On("Verify", "tok").Return(auth.Principal{Username: "u", Roles: tt.roles}, nil)
			r, reached := setupAuthRouter(v, tt.required...)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set("Authorization", "Bearer tok")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.code == http.StatusOK, *reached)
			if tt.code == http.StatusForbidden {
				assert.JSONEq(t, `{"message":"access denied","status":"FORBIDDEN"}`, w.Body.String())
			}
		})
	}
}

func TestRequireRoles_WithoutPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireRoles(auth.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
