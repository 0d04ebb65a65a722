package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"archbudget/internal/models"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) GetByUserID(userID uuid.UUID) (*models.PaymentStatus, error) {
	ctx := context.Background()

	query := `SELECT user_id, has_paid, reference, paid_at
		FROM payment_statuses WHERE user_id = $1`

	var status models.PaymentStatus
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&status.UserID,
		&status.HasPaid,
		&status.Reference,
		&status.PaidAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &status, nil
}

// MarkPaid records a completed checkout for the user. Replaying the same
// webhook is harmless: the row is simply overwritten with the same values.
func (r *PaymentRepository) MarkPaid(userID uuid.UUID, reference string) error {
	ctx := context.Background()

	query := `
		INSERT INTO payment_statuses (user_id, has_paid, reference, paid_at)
		VALUES ($1, TRUE, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			has_paid = TRUE,
			reference = EXCLUDED.reference,
			paid_at = EXCLUDED.paid_at
	`

	_, err := r.pool.Exec(ctx, query, userID, reference, time.Now())
	return err
}
