package transaction

import (
	"testing"

	"FinanceTracker/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionListResponse(t *testing.T) {
	res := NewTransactionListResponse([]entity.Transaction{
		{ID: "a", Amount: 0.1, Type: entity.TransactionTypeExpense},
		{ID: "b", Amount: 0.2, Type: entity.TransactionTypeExpense},
		{ID: "c", Amount: 10, Type: entity.TransactionTypeIncome},
	})

	assert.Equal(t, 10.0, res.TotalIncome)
	assert.Equal(t, 0.3, res.TotalExpense)
	assert.Equal(t, 9.7, res.Balance)
	assert.Len(t, res.Transactions, 3)

	empty := NewTransactionListResponse(nil)
	assert.NotNil(t, empty.Transactions)
	assert.Zero(t, empty.Balance)
}

func TestNewSummaryResponse(t *testing.T) {
	res := NewSummaryResponse(entity.FinancialSummary{
		ExpenseByPaymentMethod: map[string]float64{"UPI": 120, "Card": 40},
	})

	assert.Equal(t, 120.0, res.TotalUPI)
	assert.Zero(t, res.TotalCash)
}

func TestNewSeriesResponse(t *testing.T) {
	res := NewSeriesResponse([]entity.SeriesPoint{
		{Key: "2024-01", Label: "Jan 2024", Amount: 80},
		{Key: "2024-02", Label: "Feb 2024", Amount: 10},
	})

	assert.Equal(t, []string{"Jan 2024", "Feb 2024"}, res.Labels)
	assert.Equal(t, []float64{80, 10}, res.Amounts)
}
