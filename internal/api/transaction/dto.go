package transaction

import (
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/money"
)

type CreateTransactionRequest struct {
	Amount          float64 `json:"amount" validate:"required"`
	Category        string  `json:"category" validate:"required,max=100"`
	Date            string  `json:"date" validate:"required"`
	Description     string  `json:"description" validate:"max=500"`
	PaymentMethod   string  `json:"payment_method" validate:"max=50"`
	TransactionType string  `json:"transaction_type"`
}

type UpdateTransactionRequest struct {
	Amount          float64 `json:"amount" validate:"required"`
	Category        string  `json:"category" validate:"required,max=100"`
	Date            string  `json:"date" validate:"required"`
	Description     string  `json:"description" validate:"max=500"`
	PaymentMethod   string  `json:"payment_method" validate:"max=50"`
	TransactionType string  `json:"transaction_type"`
}

type TransactionFilter struct {
	Type      string `query:"type"`
	Category  string `query:"category"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type TransactionListResponse struct {
	Transactions []entity.Transaction `json:"transactions"`
	TotalIncome  float64              `json:"total_income"`
	TotalExpense float64              `json:"total_expense"`
	Balance      float64              `json:"balance"`
}

// NewTransactionListResponse totals the listed transactions, so the
// figures always describe exactly the rows returned.
func NewTransactionListResponse(transactions []entity.Transaction) TransactionListResponse {
	totals := money.NewTotals()
	for _, t := range transactions {
		totals.Add(string(t.Type), t.Amount)
	}

	income := totals.Get(string(entity.TransactionTypeIncome))
	expense := totals.Get(string(entity.TransactionTypeExpense))

	if transactions == nil {
		transactions = []entity.Transaction{}
	}

	return TransactionListResponse{
		Transactions: transactions,
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      money.Sub(income, expense),
	}
}

// NewSummaryResponse adds the quick UPI and cash figures, read from the
// expense payment method split.
func NewSummaryResponse(summary entity.FinancialSummary) SummaryResponse {
	return SummaryResponse{
		FinancialSummary: summary,
		TotalUPI:         summary.ExpenseByPaymentMethod["UPI"],
		TotalCash:        summary.ExpenseByPaymentMethod["Cash"],
	}
}

type SummaryResponse struct {
	entity.FinancialSummary
	TotalUPI  float64 `json:"total_upi"`
	TotalCash float64 `json:"total_cash"`
}

type StatisticsResponse struct {
	entity.FinancialSummary
	TopSpendingCategories []entity.CategoryTotal `json:"top_spending_categories"`
}

type SeriesResponse struct {
	Labels  []string  `json:"labels"`
	Amounts []float64 `json:"amounts"`
}

func NewSeriesResponse(points []entity.SeriesPoint) SeriesResponse {
	res := SeriesResponse{
		Labels:  make([]string, 0, len(points)),
		Amounts: make([]float64, 0, len(points)),
	}
	for _, p := range points {
		res.Labels = append(res.Labels, p.Label)
		res.Amounts = append(res.Amounts, p.Amount)
	}
	return res
}

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}
