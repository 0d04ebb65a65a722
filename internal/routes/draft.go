package routes

import (
	"github.com/gin-gonic/gin"

	"archbudget/internal/handlers"
	"archbudget/internal/middlewares"
)

type DraftRoutes struct {
	handler *handlers.DraftHandler
}

func NewDraftRoutes(handler *handlers.DraftHandler) *DraftRoutes {
	return &DraftRoutes{handler: handler}
}

func (r *DraftRoutes) RegisterRoutes(router *gin.RouterGroup) {
	draft := router.Group("/draft")
	draft.Use(middlewares.Authenticate)
	{
		draft.GET("", r.handler.Get)
		draft.PUT("", r.handler.Save)
		draft.DELETE("", r.handler.Delete)
	}
}
