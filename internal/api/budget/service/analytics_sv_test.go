package budgetService

import (
	"context"
	"testing"
	"time"

	"FinanceTracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSpentAmountOpenEndedWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	food := f.budget(t, "b1", "Food", 100, "2024-01-01", "", jan1)

	f.spend(t, "Food", "2024-06-01", 40)
	f.spend(t, "Food", "2023-12-31", 25)
	f.spend(t, "Travel", "2024-06-01", 70)
	f.record(t, "Food", "2024-02-01", 500, entity.TransactionTypeIncome)

	spent, err := f.engine.SpentAmount(ctx, "user-1", food)
	require.NoError(t, err)
	assert.Equal(t, 40.0, spent)
}

func TestSpentAmountClosedWindowIsInclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	food := f.budget(t, "b1", "Food", 100, "2024-01-01", "2024-01-31", jan1)

	f.spend(t, "Food", "2024-01-01", 10)
	f.spend(t, "Food", "2024-01-31", 20)
	f.spend(t, "Food", "2024-02-01", 40)

	spent, err := f.engine.SpentAmount(ctx, "user-1", food)
	require.NoError(t, err)
	assert.Equal(t, 30.0, spent)
}

func TestAnalyticsForUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.budget(t, "b-food", "Food", 100, "2024-01-01", "", jan1)
	f.budget(t, "b-rent", "Rent", 1000, "2024-01-01", "", jan1.Add(time.Hour))

	f.spend(t, "Food", "2024-01-10", 120)

	analytics, err := f.engine.AnalyticsForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, analytics, 2)

	assert.Equal(t, "b-rent", analytics[0].Budget.ID)
	assert.Zero(t, analytics[0].SpentAmount)
	assert.False(t, analytics[0].IsOverspent)

	assert.Equal(t, "b-food", analytics[1].Budget.ID)
	assert.Equal(t, 120.0, analytics[1].SpentAmount)
	assert.Equal(t, -20.0, analytics[1].RemainingAmount)
	assert.Equal(t, 120.0, analytics[1].PercentageUsed)
	assert.True(t, analytics[1].IsOverspent)
}

func TestWarnings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.budget(t, "b-food", "Food", 100, "2024-01-01", "", jan1)
	f.budget(t, "b-fuel", "Fuel", 100, "2024-01-01", "", jan1.Add(time.Minute))
	f.budget(t, "b-fun", "Fun", 100, "2024-01-01", "", jan1.Add(2*time.Minute))
	f.budget(t, "b-gym", "Gym", 100, "2024-01-01", "", jan1.Add(3*time.Minute))

	f.spend(t, "Food", "2024-01-05", 85)
	f.spend(t, "Fuel", "2024-01-05", 100)
	f.spend(t, "Fun", "2024-01-05", 130)
	f.spend(t, "Gym", "2024-01-05", 80)

	warnings, err := f.engine.Warnings(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, []entity.BudgetWarning{
		{Type: entity.WarningOverspent, Category: "Fun", Allocated: 100, Spent: 130, Overage: 30},
		{Type: entity.WarningApproachingLimit, Category: "Food", Allocated: 100, Spent: 85, Percentage: 85},
	}, warnings)
}

func TestWarningsEmpty(t *testing.T) {
	f := newFixture(t)

	warnings, err := f.engine.Warnings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, warnings)
	assert.Empty(t, warnings)
}

func TestOverspentCategories(t *testing.T) {
	f := newFixture(t)
	f.budget(t, "b-food", "Food", 100, "2024-01-01", "", jan1)
	f.budget(t, "b-rent", "Rent", 500, "2024-01-01", "", jan1.Add(time.Hour))
	f.spend(t, "Food", "2024-01-02", 150.5)
	f.spend(t, "Rent", "2024-01-02", 500)

	overspent, err := f.engine.OverspentCategories(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []entity.OverspentCategory{
		{Category: "Food", Allocated: 100, Spent: 150.5, Overage: 50.5},
	}, overspent)
}

func TestSpendingBreakdownIgnoresBudgetWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	food := f.budget(t, "b-food", "Food", 100, "2024-01-01", "", jan1)
	f.budget(t, "b-books", "Books", 50, "2024-01-01", "", jan1.Add(time.Hour))

	f.spend(t, "Food", "2023-12-31", 30)
	f.spend(t, "Food", "2024-06-01", 50)
	f.spend(t, "Travel", "2024-02-01", 40)

	breakdown, err := f.engine.SpendingBreakdown(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, map[string]entity.CategoryBreakdown{
		"Food":   {Budgeted: 100, Spent: 80, Remaining: 20, Percentage: 80},
		"Books":  {Budgeted: 50, Spent: 0, Remaining: 50, Percentage: 0},
		"Travel": {Budgeted: 0, Spent: 40, Remaining: -40, Percentage: 100},
	}, breakdown)

	windowed, err := f.engine.SpentAmount(ctx, "user-1", food)
	require.NoError(t, err)
	assert.Equal(t, 50.0, windowed)
}

func TestFractionalSpendingMatchesAllocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	food := f.budget(t, "b-food", "Food", 0.3, "2024-01-01", "", jan1)

	f.spend(t, "Food", "2024-01-02", 0.1)
	f.spend(t, "Food", "2024-01-03", 0.2)

	spent, err := f.engine.SpentAmount(ctx, "user-1", food)
	require.NoError(t, err)
	assert.Equal(t, 0.3, spent)

	analytics, err := f.engine.AnalyticsForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, analytics, 1)
	assert.False(t, analytics[0].IsOverspent)

	breakdown, err := f.engine.SpendingBreakdown(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]entity.CategoryBreakdown{
		"Food": {Budgeted: 0.3, Spent: 0.3, Remaining: 0, Percentage: 100},
	}, breakdown)
}
