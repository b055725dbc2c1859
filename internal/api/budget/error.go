package budget

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	ErrBudgetNotFound      = response.NewError(http.StatusNotFound, "budget not found")
	ErrBudgetNotOwned      = response.NewError(http.StatusForbidden, "budget does not belong to user")
	ErrBudgetAlreadyExists = response.NewError(http.StatusConflict, "budget already exists for category")
	ErrCreateBudget        = response.NewError(http.StatusInternalServerError, "failed to create budget")
	ErrUpdateBudget        = response.NewError(http.StatusInternalServerError, "failed to update budget")
	ErrDeleteBudget        = response.NewError(http.StatusInternalServerError, "failed to delete budget")
	ErrGetBudgets          = response.NewError(http.StatusInternalServerError, "failed to get budgets")
	ErrAnalyzeBudgets      = response.NewError(http.StatusInternalServerError, "failed to analyze budgets")
)
