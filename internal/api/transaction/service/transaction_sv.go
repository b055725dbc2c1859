package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/guard"
	contextPkg "FinanceTracker/pkg/context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// parseType defaults a blank type to fallback and otherwise rejects anything
// but income and expense.
func parseType(raw string, fallback entity.TransactionType) (entity.TransactionType, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return guard.ParseTransactionType(raw)
}

func validateTransaction(amount float64, category string, date string) (string, error) {
	if err := guard.Amount("amount", amount); err != nil {
		return "", err
	}
	if err := guard.Date("date", date); err != nil {
		return "", err
	}
	return guard.Category(category)
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req transaction.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	category, err := validateTransaction(req.Amount, req.Category, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"field":      guard.FieldOf(err),
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	transactionType, err := parseType(req.TransactionType, entity.TransactionTypeExpense)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":       requestID,
			"transaction_type": req.TransactionType,
		}).Warn("Invalid transaction type")
		return entity.Transaction{}, err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	createdAt := now()
	t := entity.Transaction{
		ID:            ULID,
		UserID:        userID,
		Amount:        req.Amount,
		Category:      category,
		Date:          req.Date,
		Description:   req.Description,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Type:          transactionType,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	if err := repo.Transactions.CreateTransaction(ctx, t); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	return t, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, transaction.ErrGetTransactions
	}

	t, err := guard.Owner(ctx, repo.Transactions.GetTransactionByID, id, userID, transaction.ErrTransactionNotOwned)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get transaction by ID")
		return entity.Transaction{}, guard.Classify(err, transaction.ErrGetTransactions)
	}

	return t, nil
}

// GetTransactions lists the caller's transactions newest first. The store
// query is chosen from the most selective filter present and the remaining
// filters are applied to its result.
func (s *transactionService) GetTransactions(ctx context.Context, userID string, filter transaction.TransactionFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var transactionType entity.TransactionType
	if strings.TrimSpace(filter.Type) != "" {
		parsed, err := guard.ParseTransactionType(filter.Type)
		if err != nil {
			return nil, err
		}
		transactionType = parsed
	}

	if err := guard.OptionalDate("start_date", filter.StartDate); err != nil {
		return nil, err
	}
	if err := guard.OptionalDate("end_date", filter.EndDate); err != nil {
		return nil, err
	}
	if filter.EndDate != "" && filter.StartDate == "" {
		return nil, guard.NewValidationError("start_date", "start_date is required when end_date is set")
	}

	category := strings.TrimSpace(filter.Category)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, transaction.ErrGetTransactions
	}

	var transactions []entity.Transaction
	switch {
	case filter.StartDate != "":
		transactions, err = repo.Transactions.GetTransactionsByDateRange(ctx, userID, filter.StartDate, filter.EndDate)
	case category != "":
		transactions, err = repo.Transactions.GetTransactionsByCategory(ctx, userID, category)
	case transactionType != "":
		transactions, err = repo.Transactions.GetTransactionsByUserAndType(ctx, userID, transactionType)
	default:
		transactions, err = repo.Transactions.GetTransactionsByUserID(ctx, userID)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get transactions")
		return nil, transaction.ErrGetTransactions
	}

	filtered := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if category != "" && t.Category != category {
			continue
		}
		if transactionType != "" && t.Type != transactionType {
			continue
		}
		filtered = append(filtered, t)
	}

	return filtered, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, id string, req transaction.UpdateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	category, err := validateTransaction(req.Amount, req.Category, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"field":      guard.FieldOf(err),
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	existing, err := guard.Owner(ctx, repo.Transactions.GetTransactionByID, id, userID, transaction.ErrTransactionNotOwned)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Transaction update rejected")
		return entity.Transaction{}, guard.Classify(err, transaction.ErrUpdateTransaction)
	}

	transactionType, err := parseType(req.TransactionType, existing.Type)
	if err != nil {
		return entity.Transaction{}, err
	}

	updated := existing
	updated.Amount = req.Amount
	updated.Category = category
	updated.Date = req.Date
	updated.Description = req.Description
	updated.PaymentMethod = strings.TrimSpace(req.PaymentMethod)
	updated.Type = transactionType
	updated.UpdatedAt = now()

	if err := repo.Transactions.UpdateTransaction(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, guard.Classify(err, transaction.ErrUpdateTransaction)
	}

	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.ErrDeleteTransaction
	}

	if _, err := guard.Owner(ctx, repo.Transactions.GetTransactionByID, id, userID, transaction.ErrTransactionNotOwned); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Transaction delete rejected")
		return guard.Classify(err, transaction.ErrDeleteTransaction)
	}

	if err := repo.Transactions.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return guard.Classify(err, transaction.ErrDeleteTransaction)
	}

	return nil
}

func (s *transactionService) ExportTransactions(ctx context.Context, userID string) ([]byte, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, transaction.ErrExportTransactions
	}

	transactions, err := repo.Transactions.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list transactions for export")
		return nil, transaction.ErrExportTransactions
	}

	summary, err := s.aggregator.FinancialSummary(ctx, userID)
	if err != nil {
		return nil, transaction.ErrExportTransactions
	}

	workbook, err := s.spreadsheet.LedgerWorkbook(transactions, summary)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render ledger workbook")
		return nil, transaction.ErrExportTransactions
	}

	return workbook, nil
}
