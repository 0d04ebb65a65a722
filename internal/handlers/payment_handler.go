package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"archbudget/internal/responses"
	"archbudget/internal/services"
	"archbudget/internal/utils"
)

// WebhookSecretHeader authenticates the payment provider's callback.
const WebhookSecretHeader = "X-Webhook-Secret"

type PaymentHandler struct {
	paymentService *services.PaymentService
	webhookSecret  string
}

func NewPaymentHandler(paymentService *services.PaymentService, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		webhookSecret:  webhookSecret,
	}
}

// Status handles GET /api/v1/payments/status
func (h *PaymentHandler) Status(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	hasPaid, err := h.paymentService.HasPaid(userID.String())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve payment status")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"has_paid": hasPaid}, "Payment status retrieved")
}

// Webhook handles POST /api/v1/payments/webhook. The provider confirms a
// completed one-time checkout here; the app only ever reads the flag it sets.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	if h.webhookSecret == "" || !utils.SecretsEqual(c.GetHeader(WebhookSecretHeader), h.webhookSecret) {
		responses.Fail(c, http.StatusUnauthorized, nil, "Invalid webhook signature")
		return
	}

	var req struct {
		UserID    string `json:"user_id" binding:"required,uuid"`
		Reference string `json:"reference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid webhook payload")
		return
	}

	if err := h.paymentService.ConfirmPayment(req.UserID, req.Reference); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to record payment")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Payment recorded")
}
