package router

import (
	"lovedj/internal/handler"
	"lovedj/internal/middleware"

	"github.com/gin-gonic/gin"
)

type DateRouter struct {
	dateHandler         *handler.DateHandler
	ratelimitMiddleware *middleware.RateLimit
}

func NewDateRouter(
	dateHandler *handler.DateHandler,
	ratelimitMiddleware *middleware.RateLimit,
) *DateRouter {
	return &DateRouter{
		dateHandler:         dateHandler,
		ratelimitMiddleware: ratelimitMiddleware,
	}
}

func (dateRouter *DateRouter) RegisterRoutes(engine *gin.Engine) {
	router := engine.Group("/api/dates")
	{
		router.GET("", dateRouter.dateHandler.List)
		router.GET("/:dateID", dateRouter.dateHandler.Get)
	}

	guarded := router.Group("")
	guarded.Use(dateRouter.ratelimitMiddleware.Guard())
	{
		guarded.POST("", dateRouter.dateHandler.Create)
		guarded.POST("/stream", dateRouter.dateHandler.Stream)
	}
}
