package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.POST("/add-task", h.AddTask)
}
