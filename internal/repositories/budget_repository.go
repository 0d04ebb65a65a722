package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"archbudget/internal/models"
)

type BudgetRepository struct {
	pool *pgxpool.Pool
}

func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// Save creates the budget or fully overwrites it when (id, user_id) already
// exists. Idempotent; last write wins.
func (r *BudgetRepository) Save(budget *models.Budget) error {
	ctx := context.Background()

	budget.Prepare()

	data, err := budget.MarshalData()
	if err != nil {
		return err
	}
	results, err := budget.MarshalResults()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO budgets (id, user_id, name, client_name, project_name, data, results, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			client_name = EXCLUDED.client_name,
			project_name = EXCLUDED.project_name,
			data = EXCLUDED.data,
			results = EXCLUDED.results,
			updated_at = EXCLUDED.updated_at
		WHERE budgets.user_id = EXCLUDED.user_id
	`

	now := time.Now()
	tag, err := r.pool.Exec(ctx, query,
		budget.ID,
		budget.UserID,
		budget.Name,
		budget.ClientName,
		budget.ProjectName,
		data,
		results,
		now,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// The id exists but belongs to someone else.
		return errors.New("budget id already taken")
	}
	budget.UpdatedAt = now

	return nil
}

func (r *BudgetRepository) GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.Budget, error) {
	ctx := context.Background()

	query := `
		SELECT id, user_id, name, client_name, project_name, data, results, created_at, updated_at
		FROM budgets WHERE id = $1 AND user_id = $2
	`

	var budget models.Budget
	var data, results []byte
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&budget.ID,
		&budget.UserID,
		&budget.Name,
		&budget.ClientName,
		&budget.ProjectName,
		&data,
		&results,
		&budget.CreatedAt,
		&budget.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &budget.Data); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(results, &budget.Results); err != nil {
		return nil, err
	}

	return &budget, nil
}

// ListByUserID returns the listing projection only, most recent first. The
// data blob is never read here.
func (r *BudgetRepository) ListByUserID(userID uuid.UUID) ([]models.BudgetListing, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, client_name, project_name, created_at, updated_at
		FROM budgets WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.BudgetListing
	for rows.Next() {
		var l models.BudgetListing
		err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.ClientName,
			&l.ProjectName,
			&l.CreatedAt,
			&l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

func (r *BudgetRepository) DeleteByIDAndUserID(id uuid.UUID, userID uuid.UUID) (bool, error) {
	ctx := context.Background()

	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
