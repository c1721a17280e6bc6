package response

import (
	"github.com/gin-gonic/gin"

	"github.com/festy23/ticketing/internal/apperror"
)

// BindJSON decodes and validates the request body into obj.
// On failure it writes a 400 envelope and returns false.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		Error(c, apperror.Wrap(apperror.KindValidation, "invalid request body", err))
		return false
	}
	return true
}
