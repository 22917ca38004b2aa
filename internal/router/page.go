package router

import (
	"lovedj/internal/handler"

	"github.com/gin-gonic/gin"
)

type PageRouter struct {
	pageHandler *handler.PageHandler
}

func NewPageRouter(pageHandler *handler.PageHandler) *PageRouter {
	return &PageRouter{pageHandler: pageHandler}
}

func (pageRouter *PageRouter) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", pageRouter.pageHandler.Index)
}
