package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"archbudget/internal/engine"
	"archbudget/internal/models"
	"archbudget/internal/utils"
)

var ErrBudgetNotFound = errors.New("budget not found")

// BudgetStore is the slice of the budget repository the service needs.
type BudgetStore interface {
	Save(budget *models.Budget) error
	GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.Budget, error)
	ListByUserID(userID uuid.UUID) ([]models.BudgetListing, error)
	DeleteByIDAndUserID(id uuid.UUID, userID uuid.UUID) (bool, error)
}

type BudgetService struct {
	budgetRepo BudgetStore
	log        *zap.Logger
}

func NewBudgetService(budgetRepo BudgetStore, log *zap.Logger) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		log:        log,
	}
}

type SaveBudgetRequest struct {
	Name        string          `json:"name" binding:"required"`
	ClientName  *string         `json:"client_name,omitempty"`
	ProjectName *string         `json:"project_name,omitempty"`
	Data        engine.Snapshot `json:"data" binding:"required"`
}

// CreateBudget saves a new budget under a server-generated id. The stored
// results are always recomputed from the snapshot, never trusted from the
// client, so data and results can never drift apart.
func (s *BudgetService) CreateBudget(userID string, req SaveBudgetRequest) (*models.Budget, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	budget := &models.Budget{
		UserID:      userUUID,
		Name:        req.Name,
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
		Data:        req.Data,
		Results:     engine.ComputeAll(req.Data),
	}

	if err := s.budgetRepo.Save(budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	s.log.Info("budget created",
		zap.String("budget_id", budget.ID.String()),
		zap.String("user_id", userID),
	)

	return budget, nil
}

// OverwriteBudget is the idempotent full re-save of an existing id. Per the
// save semantics there is no partial patch: the snapshot replaces the stored
// one wholesale and results are recomputed.
func (s *BudgetService) OverwriteBudget(budgetID, userID string, req SaveBudgetRequest) (*models.Budget, error) {
	budgetUUID, err := utils.ParseUUID(budgetID)
	if err != nil {
		return nil, fmt.Errorf("invalid budget ID: %w", err)
	}
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	budget := &models.Budget{
		ID:          budgetUUID,
		UserID:      userUUID,
		Name:        req.Name,
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
		Data:        req.Data,
		Results:     engine.ComputeAll(req.Data),
	}

	if err := s.budgetRepo.Save(budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return budget, nil
}

func (s *BudgetService) GetBudget(budgetID, userID string) (*models.Budget, error) {
	budgetUUID, err := utils.ParseUUID(budgetID)
	if err != nil {
		return nil, fmt.Errorf("invalid budget ID: %w", err)
	}
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	budget, err := s.budgetRepo.GetByIDAndUserID(budgetUUID, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	if budget == nil {
		return nil, ErrBudgetNotFound
	}

	return budget, nil
}

func (s *BudgetService) ListBudgets(userID string) ([]models.BudgetListing, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	return s.budgetRepo.ListByUserID(userUUID)
}

func (s *BudgetService) DeleteBudget(budgetID, userID string) error {
	budgetUUID, err := utils.ParseUUID(budgetID)
	if err != nil {
		return fmt.Errorf("invalid budget ID: %w", err)
	}
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	deleted, err := s.budgetRepo.DeleteByIDAndUserID(budgetUUID, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if !deleted {
		return ErrBudgetNotFound
	}

	return nil
}
