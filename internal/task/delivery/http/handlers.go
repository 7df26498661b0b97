package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-agent/pkg/response"
)

// AddTask godoc
// @Summary     Create a calendar event from a task
// @Description Validates the task, localizes day/start_time/end_time in the configured timezone and inserts one Google Calendar event. Not idempotent.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body addTaskReq true "Task"
// @Success     200  {object} addTaskResp
// @Failure     422  {object} response.Resp "Validation or parse error"
// @Failure     502  {object} response.Resp "Calendar API failure"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /add-task [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTaskReq(c)
	if err != nil {
		h.l.Warnf(ctx, "AddTask: invalid body: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddTask(ctx, req.toInput())
	if err != nil {
		mapped := h.mapError(err)
		h.logError(ctx, err, mapped)
		response.Error(c, mapped)
		return
	}

	response.Raw(c, http.StatusOK, h.newAddTaskResp(output))
}
