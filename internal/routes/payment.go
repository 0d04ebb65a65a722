package routes

import (
	"github.com/gin-gonic/gin"

	"archbudget/internal/handlers"
	"archbudget/internal/middlewares"
)

type PaymentRoutes struct {
	handler *handlers.PaymentHandler
}

func NewPaymentRoutes(handler *handlers.PaymentHandler) *PaymentRoutes {
	return &PaymentRoutes{handler: handler}
}

func (r *PaymentRoutes) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments")
	{
		// The webhook authenticates with its own shared secret, not a user token.
		payments.POST("/webhook", r.handler.Webhook)

		protected := payments.Group("/")
		protected.Use(middlewares.Authenticate)
		protected.GET("/status", r.handler.Status)
	}
}
