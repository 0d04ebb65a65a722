package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"archbudget/internal/responses"
	"archbudget/internal/services"
)

type UserHandler struct {
	authService    *services.AuthService
	paymentService *services.PaymentService
}

func NewUserHandler(authService *services.AuthService, paymentService *services.PaymentService) *UserHandler {
	return &UserHandler{
		authService:    authService,
		paymentService: paymentService,
	}
}

// GetMe handles GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "User not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve user")
		return
	}

	hasPaid, err := h.paymentService.HasPaid(userID.String())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve payment status")
		return
	}

	res := gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"created_at": user.CreatedAt,
		"has_paid":   hasPaid,
	}

	responses.Success(c, http.StatusOK, res, "User retrieved successfully")
}

// DeleteMe handles DELETE /api/v1/users/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	if err := h.authService.DeleteUser(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "User not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to delete user")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Account deleted successfully")
}
