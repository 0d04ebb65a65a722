package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"archbudget/internal/responses"
	"archbudget/internal/services"
)

type BudgetHandler struct {
	budgetService *services.BudgetService
}

func NewBudgetHandler(budgetService *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// Create handles POST /api/v1/budgets
func (h *BudgetHandler) Create(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	var req services.SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a budget name and calculation data")
		return
	}

	budget, err := h.budgetService.CreateBudget(userID.String(), req)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save budget")
		return
	}

	responses.Success(c, http.StatusCreated, budget, "Budget saved successfully")
}

// Overwrite handles PUT /api/v1/budgets/:budget_id, an idempotent full
// re-save of an existing budget.
func (h *BudgetHandler) Overwrite(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	var req services.SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a budget name and calculation data")
		return
	}

	budget, err := h.budgetService.OverwriteBudget(c.Param("budget_id"), userID.String(), req)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save budget")
		return
	}

	responses.Success(c, http.StatusOK, budget, "Budget saved successfully")
}

// List handles GET /api/v1/budgets
func (h *BudgetHandler) List(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	budgets, err := h.budgetService.ListBudgets(userID.String())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list budgets")
		return
	}

	responses.Success(c, http.StatusOK, budgets, "Budgets retrieved successfully")
}

// Get handles GET /api/v1/budgets/:budget_id
func (h *BudgetHandler) Get(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	budget, err := h.budgetService.GetBudget(c.Param("budget_id"), userID.String())
	if err != nil {
		if errors.Is(err, services.ErrBudgetNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Budget not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve budget")
		return
	}

	responses.Success(c, http.StatusOK, budget, "Budget retrieved successfully")
}

// Delete handles DELETE /api/v1/budgets/:budget_id
func (h *BudgetHandler) Delete(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	if err := h.budgetService.DeleteBudget(c.Param("budget_id"), userID.String()); err != nil {
		if errors.Is(err, services.ErrBudgetNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Budget not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to delete budget")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Budget deleted successfully")
}
