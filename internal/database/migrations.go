package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// RunMigrations executes the schema migrations in order. Each statement is
// idempotent so startup can run them unconditionally.
func RunMigrations(pool *pgxpool.Pool, log *zap.Logger) error {
	ctx := context.Background()

	migrations := []string{
		createUsersTable,
		createBudgetsTable,
		createPaymentStatusesTable,
		createBudgetsUpdatedAtIndex,
	}

	for i, migration := range migrations {
		log.Info("running migration", zap.Int("step", i+1), zap.Int("total", len(migrations)))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info("all migrations completed")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  last_login_at TIMESTAMPTZ
);
`

const createBudgetsTable = `
CREATE TABLE IF NOT EXISTS budgets (
  id UUID PRIMARY KEY,
  user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  client_name TEXT,
  project_name TEXT,
  data JSONB NOT NULL,
  results JSONB NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const createPaymentStatusesTable = `
CREATE TABLE IF NOT EXISTS payment_statuses (
  user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  has_paid BOOLEAN NOT NULL DEFAULT FALSE,
  reference TEXT,
  paid_at TIMESTAMPTZ
);
`

const createBudgetsUpdatedAtIndex = `
CREATE INDEX IF NOT EXISTS idx_budgets_user_updated
  ON budgets (user_id, updated_at DESC);
`
