package handler

import (
	"net/http"

	"lovedj/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthStatus *service.HealthService
}

func NewHealthHandler(status *service.HealthService) *HealthHandler {
	return &HealthHandler{healthStatus: status}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Readiness 目錄尚未載入前回 503；保底目錄仍視為 ready，由 fallbackReason 標示
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.healthStatus.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"catalog": h.healthStatus.Catalog(),
	})
}
