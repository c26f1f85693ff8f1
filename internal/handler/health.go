package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the liveness endpoint.
// The service has no downstream dependencies, so there is no readiness check to run.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness responds OK if the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
