package entity

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is one ledger row. Amount is always positive; the direction
// is carried by Type.
type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Amount        float64         `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Type          TransactionType `json:"transaction_type"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (t Transaction) OwnerID() string {
	return t.UserID
}

func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

const DefaultCategoryColor = "#007bff"
