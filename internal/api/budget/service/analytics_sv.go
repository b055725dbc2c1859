package budgetService

import (
	"FinanceTracker/internal/api/budget"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/money"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// unbudgetedPercentage marks spending in a category with no budget as
// fully consumed.
const unbudgetedPercentage = 100.0

// SpentAmount sums the user's expenses in the budget's category whose date
// lies inside the budget window.
func (e *analyticsEngine) SpentAmount(ctx context.Context, userID string, b entity.Budget) (float64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := e.transactionRepository.NewClient(false)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, budget.ErrAnalyzeBudgets
	}

	transactions, err := repo.Transactions.GetTransactionsByDateRange(ctx, userID, b.StartDate, b.EndDate)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"budget_id":  b.ID,
			"error":      err.Error(),
		}).Error("Failed to list transactions in budget window")
		return 0, budget.ErrAnalyzeBudgets
	}

	amounts := make([]float64, 0, len(transactions))
	for _, t := range transactions {
		if t.IsExpense() && t.Category == b.Category && b.Covers(t.Date) {
			amounts = append(amounts, t.Amount)
		}
	}

	return money.Sum(amounts...), nil
}

func (e *analyticsEngine) budgets(ctx context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := e.budgetRepository.NewClient(false)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, budget.ErrAnalyzeBudgets
	}

	budgets, err := repo.Budgets.GetBudgetsByUserID(ctx, userID)
	if err != nil {
		return nil, budget.ErrAnalyzeBudgets
	}

	return budgets, nil
}

// AnalyticsForUser keeps the store's budget order, newest first.
func (e *analyticsEngine) AnalyticsForUser(ctx context.Context, userID string) ([]entity.BudgetAnalytics, error) {
	budgets, err := e.budgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	analytics := make([]entity.BudgetAnalytics, 0, len(budgets))
	for _, b := range budgets {
		spent, err := e.SpentAmount(ctx, userID, b)
		if err != nil {
			return nil, err
		}
		analytics = append(analytics, entity.NewBudgetAnalytics(b, spent))
	}

	return analytics, nil
}

func (e *analyticsEngine) Warnings(ctx context.Context, userID string) ([]entity.BudgetWarning, error) {
	analytics, err := e.AnalyticsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return entity.WarningsFor(analytics), nil
}

func (e *analyticsEngine) OverspentCategories(ctx context.Context, userID string) ([]entity.OverspentCategory, error) {
	analytics, err := e.AnalyticsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	overspent := make([]entity.OverspentCategory, 0)
	for _, a := range analytics {
		if !a.IsOverspent {
			continue
		}
		overspent = append(overspent, entity.OverspentCategory{
			Category:  a.Budget.Category,
			Allocated: a.Budget.AllocatedAmount,
			Spent:     a.SpentAmount,
			Overage:   money.Sub(a.SpentAmount, a.Budget.AllocatedAmount),
		})
	}

	return overspent, nil
}

// SpendingBreakdown covers every budgeted category and every category with
// expenses. Spending here is all-time and ignores budget windows, unlike
// SpentAmount.
func (e *analyticsEngine) SpendingBreakdown(ctx context.Context, userID string) (map[string]entity.CategoryBreakdown, error) {
	budgets, err := e.budgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	spentByCategory, err := e.aggregator.CategoryTotals(ctx, userID, entity.TransactionTypeExpense)
	if err != nil {
		return nil, budget.ErrAnalyzeBudgets
	}

	breakdown := make(map[string]entity.CategoryBreakdown, len(budgets)+len(spentByCategory))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		breakdown[b.Category] = entity.CategoryBreakdown{
			Budgeted:   b.AllocatedAmount,
			Spent:      spent,
			Remaining:  money.Sub(b.AllocatedAmount, spent),
			Percentage: money.Percent(spent, b.AllocatedAmount),
		}
	}

	for category, spent := range spentByCategory {
		if _, budgeted := breakdown[category]; budgeted {
			continue
		}
		breakdown[category] = entity.CategoryBreakdown{
			Budgeted:   0,
			Spent:      spent,
			Remaining:  money.Sub(0, spent),
			Percentage: unbudgetedPercentage,
		}
	}

	return breakdown, nil
}
