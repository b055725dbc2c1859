// Package guard holds the input rules shared by every ledger write path and
// the ownership check that gates mutations.
package guard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/response"
)

const DateLayout = "2006-01-02"

func NewValidationError(field, msg string) error {
	return response.NewFieldError(http.StatusBadRequest, field, msg)
}

// Amount rejects NaN, infinities, zero and negative values.
func Amount(field string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NewValidationError(field, fmt.Sprintf("%s must be a finite number", field))
	}
	if amount <= 0 {
		return NewValidationError(field, fmt.Sprintf("%s must be greater than zero", field))
	}
	return nil
}

// Date requires a real calendar date written exactly as YYYY-MM-DD.
func Date(field, value string) error {
	if len(value) != len(DateLayout) {
		return NewValidationError(field, fmt.Sprintf("%s must be in YYYY-MM-DD format", field))
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return NewValidationError(field, fmt.Sprintf("%s must be in YYYY-MM-DD format", field))
	}
	return nil
}

// OptionalDate is Date that also accepts the empty string.
func OptionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	return Date(field, value)
}

// Category returns the trimmed category or a ValidationError when nothing
// is left.
func Category(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewValidationError("category", "category is required")
	}
	return trimmed, nil
}

// ParseTransactionType maps exactly "income" and "expense" (any case) to
// their enum. Everything else is rejected.
func ParseTransactionType(raw string) (entity.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(entity.TransactionTypeIncome):
		return entity.TransactionTypeIncome, nil
	case string(entity.TransactionTypeExpense):
		return entity.TransactionTypeExpense, nil
	default:
		return "", NewValidationError("transaction_type", fmt.Sprintf("unknown transaction type %q", raw))
	}
}

func ParseBudgetPeriod(raw string) (entity.BudgetPeriod, error) {
	switch entity.BudgetPeriod(strings.ToLower(strings.TrimSpace(raw))) {
	case entity.BudgetPeriodWeekly:
		return entity.BudgetPeriodWeekly, nil
	case entity.BudgetPeriodMonthly:
		return entity.BudgetPeriodMonthly, nil
	case entity.BudgetPeriodYearly:
		return entity.BudgetPeriodYearly, nil
	case entity.BudgetPeriodCustom:
		return entity.BudgetPeriodCustom, nil
	default:
		return "", NewValidationError("period", fmt.Sprintf("unknown budget period %q", raw))
	}
}

type Owned interface {
	OwnerID() string
}

// Owner fetches id and checks it belongs to callerID. A missing entity
// surfaces whatever not-found error fetch returns; a foreign one returns
// notOwned.
func Owner[T Owned](ctx context.Context, fetch func(context.Context, string) (T, error), id, callerID string, notOwned error) (T, error) {
	var zero T

	found, err := fetch(ctx, id)
	if err != nil {
		return zero, err
	}

	if found.OwnerID() != callerID {
		return zero, notOwned
	}

	return found, nil
}

func code(err error) int {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return respErr.Code
	}
	return 0
}

func IsValidation(err error) bool {
	return code(err) == http.StatusBadRequest
}

func IsNotFound(err error) bool {
	return code(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	return code(err) == http.StatusForbidden
}

func IsConflict(err error) bool {
	return code(err) == http.StatusConflict
}

// FieldOf names the input a ValidationError refers to.
func FieldOf(err error) string {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return respErr.Field
	}
	return ""
}

// Classify passes the business-rule kinds through unchanged and replaces
// anything else, such as a driver fault, with fallback.
func Classify(err, fallback error) error {
	if err == nil {
		return nil
	}
	switch code(err) {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusForbidden, http.StatusConflict:
		return err
	default:
		return fallback
	}
}
