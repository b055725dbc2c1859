package entity

import "FinanceTracker/pkg/money"

// ApproachingLimitPercentage is the usage above which a budget that is not
// yet overspent gets a warning.
const ApproachingLimitPercentage = 80.0

type BudgetAnalytics struct {
	Budget          Budget  `json:"budget"`
	SpentAmount     float64 `json:"spent_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	PercentageUsed  float64 `json:"percentage_used"`
	IsOverspent     bool    `json:"is_overspent"`
}

func NewBudgetAnalytics(budget Budget, spent float64) BudgetAnalytics {
	return BudgetAnalytics{
		Budget:          budget,
		SpentAmount:     spent,
		RemainingAmount: money.Sub(budget.AllocatedAmount, spent),
		PercentageUsed:  money.Percent(spent, budget.AllocatedAmount),
		IsOverspent:     spent > budget.AllocatedAmount,
	}
}

type WarningType string

const (
	WarningOverspent        WarningType = "overspent"
	WarningApproachingLimit WarningType = "approaching_limit"
)

type BudgetWarning struct {
	Type       WarningType `json:"type"`
	Category   string      `json:"category"`
	Allocated  float64     `json:"allocated"`
	Spent      float64     `json:"spent"`
	Overage    float64     `json:"overage,omitempty"`
	Percentage float64     `json:"percentage,omitempty"`
}

// Warning returns the single warning a budget raises, if any. Overspending
// takes precedence over approaching the limit.
func (a BudgetAnalytics) Warning() (BudgetWarning, bool) {
	switch {
	case a.IsOverspent:
		return BudgetWarning{
			Type:      WarningOverspent,
			Category:  a.Budget.Category,
			Allocated: a.Budget.AllocatedAmount,
			Spent:     a.SpentAmount,
			Overage:   money.Sub(a.SpentAmount, a.Budget.AllocatedAmount),
		}, true
	case a.PercentageUsed > ApproachingLimitPercentage:
		return BudgetWarning{
			Type:       WarningApproachingLimit,
			Category:   a.Budget.Category,
			Allocated:  a.Budget.AllocatedAmount,
			Spent:      a.SpentAmount,
			Percentage: a.PercentageUsed,
		}, true
	default:
		return BudgetWarning{}, false
	}
}

// WarningsFor collects the warnings of each budget in order. It is never
// nil.
func WarningsFor(analytics []BudgetAnalytics) []BudgetWarning {
	warnings := make([]BudgetWarning, 0)
	for _, a := range analytics {
		if warning, ok := a.Warning(); ok {
			warnings = append(warnings, warning)
		}
	}
	return warnings
}

type OverspentCategory struct {
	Category  string  `json:"category"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
	Overage   float64 `json:"overage"`
}

type CategoryBreakdown struct {
	Budgeted   float64 `json:"budgeted"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

type FinancialSummary struct {
	TotalIncome            float64            `json:"total_income"`
	TotalExpense           float64            `json:"total_expense"`
	NetBalance             float64            `json:"net_balance"`
	IncomeByCategory       map[string]float64 `json:"income_by_category"`
	ExpenseByCategory      map[string]float64 `json:"expense_by_category"`
	ExpenseByPaymentMethod map[string]float64 `json:"expense_by_payment_method"`
}

// SeriesPoint is one bucket of a chart series. Key is the sortable bucket
// ("2024-01-15" or "2024-01"), Label its display form.
type SeriesPoint struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
