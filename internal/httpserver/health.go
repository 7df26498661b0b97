package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	RootMessage   = "Calendar Agent is live."
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-agent"
)

// rootCheck is the public liveness endpoint. Its body is part of the API contract
// and does not depend on the calendar client.
// @Summary Liveness message
// @Description Returns a fixed message while the process is serving
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Calendar Agent is live."
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	response.Raw(c, http.StatusOK, gin.H{"message": RootMessage})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check. The calendar client is built before the server
// starts, so being able to answer means being ready.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
