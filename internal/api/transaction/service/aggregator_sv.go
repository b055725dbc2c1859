package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/money"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const monthLabelLayout = "Jan 2006"

func (a *aggregator) TotalByType(ctx context.Context, userID string, transactionType entity.TransactionType) (float64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := a.transactionRepository.NewClient(false)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, transaction.ErrGetTransactions
	}

	total, err := repo.Transactions.SumByType(ctx, userID, transactionType)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       transactionType,
			"error":      err.Error(),
		}).Error("Failed to sum transactions by type")
		return 0, transaction.ErrGetTransactions
	}

	return total, nil
}

// CategoryTotals leaves categories without a matching transaction out of
// the map instead of reporting them as zero.
func (a *aggregator) CategoryTotals(ctx context.Context, userID string, transactionType entity.TransactionType) (map[string]float64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := a.transactionRepository.NewClient(false)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, transaction.ErrGetTransactions
	}

	totals, err := repo.Transactions.SumByCategory(ctx, userID, transactionType)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       transactionType,
			"error":      err.Error(),
		}).Error("Failed to sum transactions by category")
		return nil, transaction.ErrGetTransactions
	}

	if totals == nil {
		totals = map[string]float64{}
	}

	return totals, nil
}

// PaymentMethodTotals covers expenses only.
func (a *aggregator) PaymentMethodTotals(ctx context.Context, userID string) (map[string]float64, error) {
	expenses, err := a.expenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := money.NewTotals()
	for _, t := range expenses {
		totals.Add(t.PaymentMethod, t.Amount)
	}

	return totals.Map(), nil
}

// DailySeries buckets expenses by exact date, ascending, without filling
// days that had no spending.
func (a *aggregator) DailySeries(ctx context.Context, userID string) ([]entity.SeriesPoint, error) {
	expenses, err := a.expenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := money.NewTotals()
	for _, t := range expenses {
		totals.Add(t.Date, t.Amount)
	}

	points := make([]entity.SeriesPoint, 0, totals.Len())
	for _, day := range totals.Keys() {
		points = append(points, entity.SeriesPoint{Key: day, Label: day, Amount: totals.Get(day)})
	}

	return points, nil
}

// MonthlySeries buckets expenses by the year-month prefix of their date.
// Dates without at least a year and a month are skipped.
func (a *aggregator) MonthlySeries(ctx context.Context, userID string) ([]entity.SeriesPoint, error) {
	expenses, err := a.expenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := money.NewTotals()
	for _, t := range expenses {
		month, ok := monthKey(t.Date)
		if !ok {
			continue
		}
		totals.Add(month, t.Amount)
	}

	points := make([]entity.SeriesPoint, 0, totals.Len())
	for _, month := range totals.Keys() {
		points = append(points, entity.SeriesPoint{Key: month, Label: monthLabel(month), Amount: totals.Get(month)})
	}

	return points, nil
}

func (a *aggregator) FinancialSummary(ctx context.Context, userID string) (entity.FinancialSummary, error) {
	income, err := a.TotalByType(ctx, userID, entity.TransactionTypeIncome)
	if err != nil {
		return entity.FinancialSummary{}, err
	}

	expense, err := a.TotalByType(ctx, userID, entity.TransactionTypeExpense)
	if err != nil {
		return entity.FinancialSummary{}, err
	}

	incomeByCategory, err := a.CategoryTotals(ctx, userID, entity.TransactionTypeIncome)
	if err != nil {
		return entity.FinancialSummary{}, err
	}

	expenseByCategory, err := a.CategoryTotals(ctx, userID, entity.TransactionTypeExpense)
	if err != nil {
		return entity.FinancialSummary{}, err
	}

	byPaymentMethod, err := a.PaymentMethodTotals(ctx, userID)
	if err != nil {
		return entity.FinancialSummary{}, err
	}

	return entity.FinancialSummary{
		TotalIncome:            income,
		TotalExpense:           expense,
		NetBalance:             money.Sub(income, expense),
		IncomeByCategory:       incomeByCategory,
		ExpenseByCategory:      expenseByCategory,
		ExpenseByPaymentMethod: byPaymentMethod,
	}, nil
}

// TopCategories returns the expense categories with the highest totals,
// largest first and ties broken by name. A limit of zero or less returns
// every category.
func (a *aggregator) TopCategories(ctx context.Context, userID string, limit int) ([]entity.CategoryTotal, error) {
	totals, err := a.CategoryTotals(ctx, userID, entity.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	ranked := make([]entity.CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		ranked = append(ranked, entity.CategoryTotal{Category: category, Amount: amount})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Category < ranked[j].Category
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

func (a *aggregator) expenses(ctx context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := a.transactionRepository.NewClient(false)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, transaction.ErrGetTransactions
	}

	expenses, err := repo.Transactions.GetTransactionsByUserAndType(ctx, userID, entity.TransactionTypeExpense)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list expenses")
		return nil, transaction.ErrGetTransactions
	}

	return expenses, nil
}

// monthKey truncates a date to its first two dash-separated parts.
func monthKey(date string) (string, bool) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0] + "-" + parts[1], true
}

func monthLabel(key string) string {
	month, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return month.Format(monthLabelLayout)
}
