package transaction

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	ErrTransactionNotFound   = response.NewError(http.StatusNotFound, "transaction not found")
	ErrTransactionNotOwned   = response.NewError(http.StatusForbidden, "transaction does not belong to user")
	ErrCreateTransaction     = response.NewError(http.StatusInternalServerError, "failed to create transaction")
	ErrUpdateTransaction     = response.NewError(http.StatusInternalServerError, "failed to update transaction")
	ErrDeleteTransaction     = response.NewError(http.StatusInternalServerError, "failed to delete transaction")
	ErrGetTransactions       = response.NewError(http.StatusInternalServerError, "failed to get transactions")
	ErrExportTransactions    = response.NewError(http.StatusInternalServerError, "failed to export transactions")
	ErrCategoryAlreadyExists = response.NewError(http.StatusConflict, "category already exists")
	ErrCreateCategory        = response.NewError(http.StatusInternalServerError, "failed to create category")
	ErrGetCategories         = response.NewError(http.StatusInternalServerError, "failed to get categories")
)
