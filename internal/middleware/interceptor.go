package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/response"
)

const unresolvedUser = "<unresolved>"

// Interceptor logs every invocation of the handler it wraps: one "before"
// entry, then exactly one of "after returning" or "after throwing".
// Panics are logged and re-raised for Recovery.
func Interceptor(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := MethodIdentity(c)

		user := unresolvedUser
		if p, ok := auth.PrincipalFromContext(c.Request.Context()); ok {
			user = p.Username
		} else {
			logger.Warnw("principal unresolved", "method", method)
		}

		logger.Infow("before", "method", method, "user", user, "request_id", GetRequestID(c))

		errCount := len(c.Errors)
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("after throwing", "method", method, "user", user, "error", fmt.Sprint(r))
				panic(r)
			}
		}()

		c.Next()

		if len(c.Errors) > errCount {
			logger.Errorw("after throwing", "method", method, "user", user, "error", c.Errors.Last().Error())
			return
		}
		result := ""
		if env, ok := response.FromContext(c); ok {
			result = env.String()
		}
		logger.Infow("after returning", "method", method, "user", user, "result", result)
	}
}

// MethodIdentity names the matched handler, verb and route template,
// e.g. "handler.(*Handler).GetProject GET /api/v1/project/:code".
func MethodIdentity(c *gin.Context) string {
	return fmt.Sprintf("%s %s %s", shortHandlerName(c.HandlerName()), c.Request.Method, c.FullPath())
}

func shortHandlerName(name string) string {
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
