package router

import (
	"lovedj/internal/handler"

	"github.com/gin-gonic/gin"
)

type HealthRouter struct {
	healthHandler *handler.HealthHandler
}

func NewHealthRouter(
	healthHandler *handler.HealthHandler,
) *HealthRouter {
	return &HealthRouter{
		healthHandler: healthHandler,
	}
}

// RegisterHealthRoutes 探針同時接受 GET 與 HEAD
func (healthRouter *HealthRouter) RegisterHealthRoutes(r *gin.Engine) {
	g := r.Group("/health")
	for _, probe := range []struct {
		path    string
		handler gin.HandlerFunc
	}{
		{"/liveness", healthRouter.healthHandler.Liveness},
		{"/readiness", healthRouter.healthHandler.Readiness},
	} {
		g.GET(probe.path, probe.handler)
		g.HEAD(probe.path, probe.handler)
	}
}
