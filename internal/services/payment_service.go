package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"archbudget/internal/models"
	"archbudget/internal/utils"
)

// PaymentStore is the slice of the payment repository the service needs.
type PaymentStore interface {
	GetByUserID(userID uuid.UUID) (*models.PaymentStatus, error)
	MarkPaid(userID uuid.UUID, reference string) error
}

// PaidCache keeps the gate check off postgres for the common case.
type PaidCache interface {
	CachePaidFlag(ctx context.Context, userID string, hasPaid bool) error
	GetPaidFlag(ctx context.Context, userID string) (bool, bool, error)
	InvalidatePaidFlag(ctx context.Context, userID string) error
}

type PaymentService struct {
	paymentRepo PaymentStore
	cache       PaidCache
	log         *zap.Logger
}

func NewPaymentService(paymentRepo PaymentStore, cache PaidCache, log *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		cache:       cache,
		log:         log,
	}
}

// HasPaid answers the access gate: redis first, postgres as the source of
// truth on a miss.
func (s *PaymentService) HasPaid(userID string) (bool, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return false, fmt.Errorf("invalid user ID: %w", err)
	}

	ctx := context.Background()
	if hasPaid, found, err := s.cache.GetPaidFlag(ctx, userID); err == nil && found {
		return hasPaid, nil
	}

	status, err := s.paymentRepo.GetByUserID(userUUID)
	if err != nil {
		return false, err
	}

	hasPaid := status != nil && status.HasPaid
	if err := s.cache.CachePaidFlag(ctx, userID, hasPaid); err != nil {
		s.log.Warn("failed to cache paid flag", zap.Error(err))
	}

	return hasPaid, nil
}

// ConfirmPayment is invoked by the webhook when the provider reports a
// completed checkout. Replays are harmless.
func (s *PaymentService) ConfirmPayment(userID string, reference string) error {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	if err := s.paymentRepo.MarkPaid(userUUID, reference); err != nil {
		return fmt.Errorf("failed to mark user as paid: %w", err)
	}

	if err := s.cache.InvalidatePaidFlag(context.Background(), userID); err != nil {
		s.log.Warn("failed to invalidate paid flag cache", zap.Error(err))
	}

	s.log.Info("payment confirmed",
		zap.String("user_id", userID),
		zap.String("reference", reference),
	)

	return nil
}
