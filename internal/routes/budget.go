package routes

import (
	"github.com/gin-gonic/gin"

	"archbudget/internal/handlers"
	"archbudget/internal/middlewares"
	"archbudget/internal/services"
)

type BudgetRoutes struct {
	budgetHandler  *handlers.BudgetHandler
	paymentService *services.PaymentService
}

func NewBudgetRoutes(budgetHandler *handlers.BudgetHandler, paymentService *services.PaymentService) *BudgetRoutes {
	return &BudgetRoutes{
		budgetHandler:  budgetHandler,
		paymentService: paymentService,
	}
}

func (r *BudgetRoutes) RegisterRoutes(router *gin.RouterGroup) {
	budgets := router.Group("/budgets")
	// Saving budgets is the paid feature; calculation itself is not gated.
	budgets.Use(middlewares.Authenticate, middlewares.RequirePaid(r.paymentService))
	{
		budgets.POST("", r.budgetHandler.Create)
		budgets.GET("", r.budgetHandler.List)
		budgets.GET("/:budget_id", r.budgetHandler.Get)
		budgets.PUT("/:budget_id", r.budgetHandler.Overwrite)
		budgets.DELETE("/:budget_id", r.budgetHandler.Delete)
	}
}
