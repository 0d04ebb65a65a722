package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"archbudget/internal/handlers"
	"archbudget/internal/services"
)

func RegisterRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	budgetHandler *handlers.BudgetHandler,
	pricingHandler *handlers.PricingHandler,
	paymentHandler *handlers.PaymentHandler,
	draftHandler *handlers.DraftHandler,
	paymentService *services.PaymentService,
) {
	api := router.Group("/api/v1")

	authRoutes := NewAuthRoutes(authHandler)
	authRoutes.RegisterRoutes(api)

	userRoutes := NewUserRoutes(userHandler)
	userRoutes.RegisterRoutes(api)

	budgetRoutes := NewBudgetRoutes(budgetHandler, paymentService)
	budgetRoutes.RegisterRoutes(api)

	pricingRoutes := NewPricingRoutes(pricingHandler)
	pricingRoutes.RegisterRoutes(api)

	paymentRoutes := NewPaymentRoutes(paymentHandler)
	paymentRoutes.RegisterRoutes(api)

	draftRoutes := NewDraftRoutes(draftHandler)
	draftRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
