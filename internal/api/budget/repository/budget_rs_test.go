package budgetRepository

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"FinanceTracker/database"
	"FinanceTracker/internal/api/budget"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/guard"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) BudgetStore {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		DSN:    database.SQLiteDSN(filepath.Join(t.TempDir(), "budgets.db")),
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client, err := New(db, log).NewClient(false)
	require.NoError(t, err)

	return client.Budgets
}

func food(createdAt time.Time) entity.Budget {
	return entity.Budget{
		ID:              "b-food",
		UserID:          "user-1",
		Category:        "Food",
		AllocatedAmount: 100,
		Period:          entity.BudgetPeriodMonthly,
		StartDate:       "2024-01-01",
		CreatedAt:       createdAt,
	}
}

func TestCreateAndGetBudget(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.CreateBudget(ctx, food(created)))

	got, err := store.GetBudgetByID(ctx, "b-food")
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Category)
	assert.Empty(t, got.EndDate)
	assert.True(t, got.CreatedAt.Equal(created))

	byCategory, err := store.GetBudgetByUserAndCategory(ctx, "user-1", "Food")
	require.NoError(t, err)
	assert.Equal(t, "b-food", byCategory.ID)

	_, err = store.GetBudgetByUserAndCategory(ctx, "user-2", "Food")
	assert.ErrorIs(t, err, budget.ErrBudgetNotFound)
}

func TestCreateBudgetDuplicateCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateBudget(ctx, food(time.Now())))

	dup := food(time.Now())
	dup.ID = "b-food-2"
	dup.AllocatedAmount = 999
	err := store.CreateBudget(ctx, dup)
	assert.ErrorIs(t, err, budget.ErrBudgetAlreadyExists)
	assert.True(t, guard.IsConflict(err))

	got, err := store.GetBudgetByID(ctx, "b-food")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.AllocatedAmount)
}

func TestListUpdateDeleteBudgets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.CreateBudget(ctx, food(base)))
	require.NoError(t, store.CreateBudget(ctx, entity.Budget{
		ID: "b-travel", UserID: "user-1", Category: "Travel", AllocatedAmount: 300,
		Period: entity.BudgetPeriodCustom, StartDate: "2024-03-01", EndDate: "2024-03-31", CreatedAt: base.Add(time.Hour),
	}))

	budgets, err := store.GetBudgetsByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "b-travel", budgets[0].ID)
	assert.Equal(t, "2024-03-31", budgets[0].EndDate)
	assert.Equal(t, entity.BudgetPeriodCustom, budgets[0].Period)
	assert.Equal(t, "b-food", budgets[1].ID)

	require.NoError(t, store.UpdateAllocation(ctx, "b-food", 250))
	got, err := store.GetBudgetByID(ctx, "b-food")
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.AllocatedAmount)

	assert.ErrorIs(t, store.UpdateAllocation(ctx, "missing", 1), budget.ErrBudgetNotFound)

	require.NoError(t, store.DeleteBudgetByUserAndCategory(ctx, "user-1", "Travel"))
	assert.ErrorIs(t, store.DeleteBudgetByUserAndCategory(ctx, "user-1", "Travel"), budget.ErrBudgetNotFound)

	require.NoError(t, store.DeleteBudget(ctx, "b-food"))
	assert.ErrorIs(t, store.DeleteBudget(ctx, "b-food"), budget.ErrBudgetNotFound)

	budgets, err = store.GetBudgetsByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, budgets)
}
