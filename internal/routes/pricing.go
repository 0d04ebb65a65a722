package routes

import (
	"github.com/gin-gonic/gin"

	"archbudget/internal/handlers"
	"archbudget/internal/middlewares"
)

type PricingRoutes struct {
	handler *handlers.PricingHandler
}

func NewPricingRoutes(handler *handlers.PricingHandler) *PricingRoutes {
	return &PricingRoutes{handler: handler}
}

func (r *PricingRoutes) RegisterRoutes(router *gin.RouterGroup) {
	pricing := router.Group("/pricing")
	pricing.Use(middlewares.Authenticate)
	{
		pricing.GET("/defaults", r.handler.Defaults)
		pricing.POST("/compute", r.handler.Compute)
	}
}
