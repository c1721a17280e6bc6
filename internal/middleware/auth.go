package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/festy23/ticketing/internal/apperror"
	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/response"
)

var errAccessDenied = apperror.Forbidden("access denied")

// TokenVerifier turns a raw bearer token into a principal.
type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// Authenticate resolves the principal from the Authorization header and
// stores it in the request context. Requests without a valid token get 401.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			response.Abort(c, err)
			return
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			response.Abort(c, err)
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", auth.ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", auth.ErrMissingToken
	}
	return token, nil
}

// RequireRoles rejects callers whose role set does not intersect roles.
func RequireRoles(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := auth.RequirePrincipal(c.Request.Context())
		if err != nil {
			response.Abort(c, err)
			return
		}
		if !principal.HasAnyRole(roles...) {
			response.Abort(c, errAccessDenied)
			return
		}
		c.Next()
	}
}
