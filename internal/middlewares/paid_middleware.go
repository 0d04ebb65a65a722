package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"archbudget/internal/services"
)

// RequirePaid gates budget persistence behind the one-time payment.
// This middleware should be used after Authenticate middleware.
func RequirePaid(paymentService *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userId")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var id string
		switch v := userID.(type) {
		case uuid.UUID:
			id = v.String()
		case string:
			id = v
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid user ID format"})
			return
		}

		hasPaid, err := paymentService.HasPaid(id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to check payment status"})
			return
		}

		if !hasPaid {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"message": "Payment required to save budgets"})
			return
		}

		c.Next()
	}
}
