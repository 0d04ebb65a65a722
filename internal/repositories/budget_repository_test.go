package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"archbudget/internal/database"
	"archbudget/internal/engine"
	"archbudget/internal/models"
)

// startPostgres spins up a disposable postgres container with the schema
// applied and returns a connected pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("archbudget_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.ConnectDSN(dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(pool, zap.NewNop()))

	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	user := &models.User{Email: uuid.NewString() + "@example.com", PasswordHash: "x"}
	require.NoError(t, NewUserRepository(pool).Create(user))
	return user.ID
}

func sampleBudget(userID uuid.UUID, name string) *models.Budget {
	data := engine.Snapshot{
		Area: 120,
		Selections: engine.Selections{
			engine.FactorStage:  3,
			engine.FactorDetail: 3,
		},
		Rate:           engine.RateInputs{Manual: true, ManualRate: 50},
		EstimatedHours: 100,
	}
	return &models.Budget{
		UserID:  userID,
		Name:    name,
		Data:    data,
		Results: engine.ComputeAll(data),
	}
}

func TestBudgetRepository_SaveAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := startPostgres(t)
	repo := NewBudgetRepository(pool)
	userID := createTestUser(t, pool)

	budget := sampleBudget(userID, "Loft renovation")
	require.NoError(t, repo.Save(budget))
	require.NotEqual(t, uuid.Nil, budget.ID)

	got, err := repo.GetByIDAndUserID(budget.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Loft renovation", got.Name)
	require.Equal(t, 120.0, got.Data.Area)
	// Results survive the JSONB round trip, incomplete values included.
	require.Equal(t, budget.Results.ProjectPrice, got.Results.ProjectPrice)
	require.Equal(t, budget.Results.GlobalComplexity, got.Results.GlobalComplexity)
}

func TestBudgetRepository_SaveOverwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := startPostgres(t)
	repo := NewBudgetRepository(pool)
	userID := createTestUser(t, pool)

	budget := sampleBudget(userID, "Original")
	require.NoError(t, repo.Save(budget))

	budget.Name = "Renamed"
	require.NoError(t, repo.Save(budget))

	listings, err := repo.ListByUserID(userID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "Renamed", listings[0].Name)
}

func TestBudgetRepository_SaveRejectsForeignID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := startPostgres(t)
	repo := NewBudgetRepository(pool)
	owner := createTestUser(t, pool)
	intruder := createTestUser(t, pool)

	budget := sampleBudget(owner, "Mine")
	require.NoError(t, repo.Save(budget))

	stolen := sampleBudget(intruder, "Hijack")
	stolen.ID = budget.ID
	require.Error(t, repo.Save(stolen))

	// The original row is untouched.
	got, err := repo.GetByIDAndUserID(budget.ID, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Mine", got.Name)
}

func TestBudgetRepository_GetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := startPostgres(t)
	repo := NewBudgetRepository(pool)
	userID := createTestUser(t, pool)

	got, err := repo.GetByIDAndUserID(uuid.New(), userID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestBudgetRepository_ListOrderedByUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := startPostgres(t)
	repo := NewBudgetRepository(pool)
	userID := createTestUser(t, pool)

	first := sampleBudget(userID, "First")
	require.NoError(t, repo.Save(first))
	second := sampleBudget(userID, "Second")
	require.NoError(t, repo.Save(second))

	// Re-saving the first makes it the most recently updated.
	require.NoError(t, repo.Save(first))

	listings, err := repo.ListByUserID(userID)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.Equal(t, "First", listings[0].Name)
}

func TestBudgetRepository_DeleteScopedToOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := startPostgres(t)
	repo := NewBudgetRepository(pool)
	owner := createTestUser(t, pool)
	stranger := createTestUser(t, pool)

	budget := sampleBudget(owner, "Mine")
	require.NoError(t, repo.Save(budget))

	deleted, err := repo.DeleteByIDAndUserID(budget.ID, stranger)
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = repo.DeleteByIDAndUserID(budget.ID, owner)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.DeleteByIDAndUserID(budget.ID, owner)
	require.NoError(t, err)
	require.False(t, deleted)
}
