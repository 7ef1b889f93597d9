package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/adapter/client"
)

// ModelHealthChecker reports the model service's availability
type ModelHealthChecker interface {
	Health(ctx context.Context) (*client.HealthResponse, error)
	Ready(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	model ModelHealthChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(model ModelHealthChecker) *HealthHandler {
	return &HealthHandler{model: model}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	if h.model != nil {
		modelHealth, err := h.model.Health(ctx)
		switch {
		case err != nil:
			components["classifier"] = "error: " + err.Error()
			healthy = false
		case !modelHealth.ModelLoaded:
			components["classifier"] = "error: model not loaded"
			healthy = false
		default:
			components["classifier"] = "ok"
		}
	} else {
		components["classifier"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.model != nil {
		if err := h.model.Ready(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "classifier unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
