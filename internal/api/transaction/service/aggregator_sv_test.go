package transactionService

import (
	"context"
	"errors"
	"testing"

	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(id, category, date string, amount float64, method string) entity.Transaction {
	return entity.Transaction{ID: id, UserID: "user-1", Amount: amount, Category: category, Date: date, PaymentMethod: method, Type: entity.TransactionTypeExpense}
}

func income(id, category, date string, amount float64) entity.Transaction {
	return entity.Transaction{ID: id, UserID: "user-1", Amount: amount, Category: category, Date: date, PaymentMethod: "Bank", Type: entity.TransactionTypeIncome}
}

func TestAggregatorEmptyLedger(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, transactionType := range []entity.TransactionType{entity.TransactionTypeIncome, entity.TransactionTypeExpense} {
		total, err := f.aggregator.TotalByType(ctx, "nobody", transactionType)
		require.NoError(t, err)
		assert.Zero(t, total)

		totals, err := f.aggregator.CategoryTotals(ctx, "nobody", transactionType)
		require.NoError(t, err)
		assert.Empty(t, totals)
	}

	methods, err := f.aggregator.PaymentMethodTotals(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, methods)

	daily, err := f.aggregator.DailySeries(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, daily)

	summary, err := f.aggregator.FinancialSummary(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, summary.NetBalance)
	assert.Empty(t, summary.ExpenseByPaymentMethod)

	top, err := f.aggregator.TopCategories(ctx, "nobody", 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestDailyAndMonthlySeries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.repo.ledger.put(
		expense("1", "Food", "2024-01-15", 50, "UPI"),
		expense("2", "Travel", "2024-01-20", 30, "Cash"),
		expense("3", "Food", "2024-02-01", 10, "UPI"),
		income("4", "Salary", "2024-01-31", 1000),
	)

	daily, err := f.aggregator.DailySeries(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []entity.SeriesPoint{
		{Key: "2024-01-15", Label: "2024-01-15", Amount: 50},
		{Key: "2024-01-20", Label: "2024-01-20", Amount: 30},
		{Key: "2024-02-01", Label: "2024-02-01", Amount: 10},
	}, daily)

	monthly, err := f.aggregator.MonthlySeries(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []entity.SeriesPoint{
		{Key: "2024-01", Label: "Jan 2024", Amount: 80},
		{Key: "2024-02", Label: "Feb 2024", Amount: 10},
	}, monthly)
}

func TestMonthlySeriesSkipsDatesWithoutMonth(t *testing.T) {
	f := newFixture()
	f.repo.ledger.put(
		expense("1", "Food", "2024", 99, "UPI"),
		expense("2", "Food", "2024-03-05", 5, "UPI"),
	)

	monthly, err := f.aggregator.MonthlySeries(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []entity.SeriesPoint{{Key: "2024-03", Label: "Mar 2024", Amount: 5}}, monthly)
}

func TestMonthKeyAndLabel(t *testing.T) {
	key, ok := monthKey("2024-07-04")
	assert.True(t, ok)
	assert.Equal(t, "2024-07", key)
	assert.Equal(t, "Jul 2024", monthLabel(key))

	_, ok = monthKey("2024")
	assert.False(t, ok)

	key, ok = monthKey("legacy-value")
	assert.True(t, ok)
	assert.Equal(t, "legacy-value", monthLabel(key))
}

func TestFinancialSummary(t *testing.T) {
	f := newFixture()
	f.repo.ledger.put(
		expense("1", "Food", "2024-01-15", 50.1, "UPI"),
		expense("2", "Food", "2024-01-16", 20.2, "Cash"),
		expense("3", "Rent", "2024-01-01", 500, "UPI"),
		income("4", "Salary", "2024-01-31", 1000),
		income("5", "Interest", "2024-01-31", 12.5),
	)

	summary, err := f.aggregator.FinancialSummary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1012.5, summary.TotalIncome)
	assert.Equal(t, 570.3, summary.TotalExpense)
	assert.Equal(t, 442.2, summary.NetBalance)
	assert.Equal(t, map[string]float64{"Salary": 1000, "Interest": 12.5}, summary.IncomeByCategory)
	assert.Equal(t, map[string]float64{"Food": 70.3, "Rent": 500}, summary.ExpenseByCategory)
	assert.Equal(t, map[string]float64{"UPI": 550.1, "Cash": 20.2}, summary.ExpenseByPaymentMethod)
}

func TestTopCategories(t *testing.T) {
	f := newFixture()
	f.repo.ledger.put(
		expense("1", "Food", "2024-01-01", 40, ""),
		expense("2", "Rent", "2024-01-01", 500, ""),
		expense("3", "Books", "2024-01-01", 40, ""),
		expense("4", "Travel", "2024-01-01", 10, ""),
		expense("5", "Games", "2024-01-01", 5, ""),
		expense("6", "Gifts", "2024-01-01", 1, ""),
		income("7", "Salary", "2024-01-01", 9000),
	)

	top, err := f.aggregator.TopCategories(context.Background(), "user-1", 5)
	require.NoError(t, err)
	assert.Equal(t, []entity.CategoryTotal{
		{Category: "Rent", Amount: 500},
		{Category: "Books", Amount: 40},
		{Category: "Food", Amount: 40},
		{Category: "Travel", Amount: 10},
		{Category: "Games", Amount: 5},
	}, top)
}

func TestAggregatorStoreFailure(t *testing.T) {
	f := newFixture()
	f.repo.ledger.err = errors.New("disk I/O error")

	_, err := f.aggregator.DailySeries(context.Background(), "user-1")
	assert.ErrorIs(t, err, transaction.ErrGetTransactions)

	_, err = f.aggregator.FinancialSummary(context.Background(), "user-1")
	assert.ErrorIs(t, err, transaction.ErrGetTransactions)
}
