package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/ticketing/internal/response"
)

// Recovery converts panics into a 500 envelope.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"request_id", GetRequestID(c),
					"stack", string(debug.Stack()),
				)

				if !c.Writer.Written() {
					response.Write(c, response.New("internal server error", nil, http.StatusInternalServerError))
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
