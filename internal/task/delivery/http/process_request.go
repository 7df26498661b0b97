package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "calendar-agent/pkg/errors"
)

// processAddTaskReq binds the add-task body. Any binding failure becomes a ValidationError
// listing the offending fields.
func (h *handler) processAddTaskReq(c *gin.Context) (addTaskReq, error) {
	var req addTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}
