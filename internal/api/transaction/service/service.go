package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/spreadsheet"
	"FinanceTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, userID string, req transaction.CreateTransactionRequest) (entity.Transaction, error)
	GetTransactionByID(ctx context.Context, userID string, id string) (entity.Transaction, error)
	GetTransactions(ctx context.Context, userID string, filter transaction.TransactionFilter) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, userID string, id string, req transaction.UpdateTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, id string) error
	CreateCategory(ctx context.Context, userID string, req transaction.CreateCategoryRequest) (entity.Category, error)
	GetCategories(ctx context.Context, userID string) ([]entity.Category, error)
	ExportTransactions(ctx context.Context, userID string) ([]byte, error)
}

// IAggregator derives totals and chart series from a user's ledger. Every
// call reads the store afresh; an empty ledger yields zeros and empty
// collections, never an error.
type IAggregator interface {
	TotalByType(ctx context.Context, userID string, transactionType entity.TransactionType) (float64, error)
	CategoryTotals(ctx context.Context, userID string, transactionType entity.TransactionType) (map[string]float64, error)
	PaymentMethodTotals(ctx context.Context, userID string) (map[string]float64, error)
	DailySeries(ctx context.Context, userID string) ([]entity.SeriesPoint, error)
	MonthlySeries(ctx context.Context, userID string) ([]entity.SeriesPoint, error)
	FinancialSummary(ctx context.Context, userID string) (entity.FinancialSummary, error)
	TopCategories(ctx context.Context, userID string, limit int) ([]entity.CategoryTotal, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	aggregator            IAggregator
	utils                 utils.IUtils
	spreadsheet           spreadsheet.ISpreadsheet
}

type aggregator struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
}

func NewTransactionService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	aggregator IAggregator,
	utils utils.IUtils,
	spreadsheet spreadsheet.ISpreadsheet,
) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		aggregator:            aggregator,
		utils:                 utils,
		spreadsheet:           spreadsheet,
	}
}

func NewAggregator(log *logrus.Logger, tr transactionRepository.Repository) IAggregator {
	return &aggregator{
		log:                   log,
		transactionRepository: tr,
	}
}
