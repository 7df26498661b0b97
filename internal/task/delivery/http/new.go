package http

import (
	"github.com/gin-gonic/gin"

	"calendar-agent/internal/task"
	pkgLog "calendar-agent/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	AddTask(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
