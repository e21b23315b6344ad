package handlers

import (
	"context"
	"net/http"
	"time"

	"coach-tree-portal/internal/service"

	"github.com/gin-gonic/gin"
)

const upstreamPingTimeout = 3 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	client service.MembersClientInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(client service.MembersClientInterface) *HealthHandler {
	return &HealthHandler{
		client: client,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) pingMembersAPI(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, upstreamPingTimeout)
	defer cancel()
	_, err := h.client.FetchAll(ctx)
	return err
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including members API connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
	}

	if err := h.pingMembersAPI(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Services["members_api"] = "error: " + err.Error()
	} else {
		response.Services["members_api"] = "healthy"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the members API answers so the form and tree can be served
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	if err := h.pingMembersAPI(c.Request.Context()); err != nil {
		ready = false
		services["members_api"] = "not ready: " + err.Error()
	} else {
		services["members_api"] = "ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
