package router

import (
	"lovedj/internal/handler"
	"lovedj/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CatalogRouter struct {
	catalogHandler      *handler.CatalogHandler
	ratelimitMiddleware *middleware.RateLimit
}

func NewCatalogRouter(
	catalogHandler *handler.CatalogHandler,
	ratelimitMiddleware *middleware.RateLimit,
) *CatalogRouter {
	return &CatalogRouter{
		catalogHandler:      catalogHandler,
		ratelimitMiddleware: ratelimitMiddleware,
	}
}

func (catalogRouter *CatalogRouter) RegisterRoutes(engine *gin.Engine) {
	router := engine.Group("/api/catalog")
	{
		router.GET("/models", catalogRouter.catalogHandler.Models)
		router.GET("/labels", catalogRouter.catalogHandler.Labels)
		router.GET("/provider", catalogRouter.catalogHandler.Provider)
		// 會打外部來源，與約會共用限流
		router.POST("/refresh", catalogRouter.ratelimitMiddleware.Guard(), catalogRouter.catalogHandler.Refresh)
	}
}
