package entity

import "time"

type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
	BudgetPeriodCustom  BudgetPeriod = "custom"
)

// Budget caps spending on one category. Period is informational; the spend
// window is [StartDate, EndDate], open-ended when EndDate is empty.
type Budget struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Category        string       `json:"category"`
	AllocatedAmount float64      `json:"allocated_amount"`
	Period          BudgetPeriod `json:"period"`
	StartDate       string       `json:"start_date"`
	EndDate         string       `json:"end_date,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

func (b Budget) OwnerID() string {
	return b.UserID
}

// Covers reports whether a YYYY-MM-DD date falls inside the budget window.
// Dates in that layout order the same as strings and as calendar days.
func (b Budget) Covers(date string) bool {
	if date < b.StartDate {
		return false
	}
	return b.EndDate == "" || date <= b.EndDate
}
