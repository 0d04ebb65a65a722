package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus matches the payment_statuses table: one row per user who has
// completed the one-time checkout. The flag is only ever written by the
// payment webhook; the application reads it to gate access.
type PaymentStatus struct {
	UserID    uuid.UUID  `json:"user_id"`
	HasPaid   bool       `json:"has_paid"`
	Reference *string    `json:"reference,omitempty"` // provider's checkout/session id
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}
