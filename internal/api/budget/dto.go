package budget

import "FinanceTracker/internal/entity"

type CreateBudgetRequest struct {
	Category        string  `json:"category" validate:"required,max=100"`
	AllocatedAmount float64 `json:"allocated_amount" validate:"required"`
	Period          string  `json:"period"`
	StartDate       string  `json:"start_date" validate:"required"`
	EndDate         string  `json:"end_date"`
}

type UpdateAllocationRequest struct {
	AllocatedAmount float64 `json:"allocated_amount" validate:"required"`
}

type BudgetListResponse struct {
	Budgets []entity.BudgetAnalytics `json:"budgets"`
}

type WarningListResponse struct {
	Warnings []entity.BudgetWarning `json:"warnings"`
}

type OverspentListResponse struct {
	Overspent []entity.OverspentCategory `json:"overspent"`
}

type BreakdownResponse struct {
	Categories map[string]entity.CategoryBreakdown `json:"categories"`
}

// DashboardResponse is the landing page payload: ledger totals plus every
// budget with its warnings.
type DashboardResponse struct {
	Summary   entity.FinancialSummary  `json:"summary"`
	TotalUPI  float64                  `json:"total_upi"`
	TotalCash float64                  `json:"total_cash"`
	Budgets   []entity.BudgetAnalytics `json:"budgets"`
	Warnings  []entity.BudgetWarning   `json:"warnings"`
}
