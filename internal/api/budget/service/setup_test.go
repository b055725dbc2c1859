package budgetService

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"FinanceTracker/database"
	budgetRepository "FinanceTracker/internal/api/budget/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	budgets      budgetRepository.BudgetStore
	transactions transactionRepository.TransactionStore
	service      IBudgetService
	engine       IAnalyticsEngine
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		DSN:    database.SQLiteDSN(filepath.Join(t.TempDir(), "finance.db")),
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	br := budgetRepository.New(db, log)
	tr := transactionRepository.New(db, log)

	budgetClient, err := br.NewClient(false)
	require.NoError(t, err)
	transactionClient, err := tr.NewClient(false)
	require.NoError(t, err)

	return fixture{
		budgets:      budgetClient.Budgets,
		transactions: transactionClient.Transactions,
		service:      NewBudgetService(log, br, utils.New()),
		engine:       NewAnalyticsEngine(log, br, tr, transactionService.NewAggregator(log, tr)),
	}
}

var seq int

func (f fixture) spend(t *testing.T, category, date string, amount float64) {
	t.Helper()
	f.record(t, category, date, amount, entity.TransactionTypeExpense)
}

func (f fixture) record(t *testing.T, category, date string, amount float64, transactionType entity.TransactionType) {
	t.Helper()
	seq++
	require.NoError(t, f.transactions.CreateTransaction(context.Background(), entity.Transaction{
		ID:       fmt.Sprintf("tx-%d", seq),
		UserID:   "user-1",
		Amount:   amount,
		Category: category,
		Date:     date,
		Type:     transactionType,
	}))
}

// budget stores a budget directly so tests control creation order.
func (f fixture) budget(t *testing.T, id, category string, allocated float64, start, end string, createdAt time.Time) entity.Budget {
	t.Helper()
	b := entity.Budget{
		ID:              id,
		UserID:          "user-1",
		Category:        category,
		AllocatedAmount: allocated,
		Period:          entity.BudgetPeriodMonthly,
		StartDate:       start,
		EndDate:         end,
		CreatedAt:       createdAt,
	}
	require.NoError(t, f.budgets.CreateBudget(context.Background(), b))
	return b
}
