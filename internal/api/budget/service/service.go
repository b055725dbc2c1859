package budgetService

import (
	"FinanceTracker/internal/api/budget"
	budgetRepository "FinanceTracker/internal/api/budget/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	CreateBudget(ctx context.Context, userID string, req budget.CreateBudgetRequest) (entity.Budget, error)
	GetBudgets(ctx context.Context, userID string) ([]entity.Budget, error)
	UpdateAllocation(ctx context.Context, userID string, id string, allocatedAmount float64) (entity.Budget, error)
	DeleteBudget(ctx context.Context, userID string, id string) error
	DeleteBudgetByCategory(ctx context.Context, userID string, category string) error
}

// IAnalyticsEngine compares budgets with what was actually spent. Nothing
// it returns is stored; every call recomputes from the ledger.
type IAnalyticsEngine interface {
	SpentAmount(ctx context.Context, userID string, b entity.Budget) (float64, error)
	AnalyticsForUser(ctx context.Context, userID string) ([]entity.BudgetAnalytics, error)
	Warnings(ctx context.Context, userID string) ([]entity.BudgetWarning, error)
	OverspentCategories(ctx context.Context, userID string) ([]entity.OverspentCategory, error)
	SpendingBreakdown(ctx context.Context, userID string) (map[string]entity.CategoryBreakdown, error)
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	utils            utils.IUtils
}

type analyticsEngine struct {
	log                   *logrus.Logger
	budgetRepository      budgetRepository.Repository
	transactionRepository transactionRepository.Repository
	aggregator            transactionService.IAggregator
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, utils utils.IUtils) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		utils:            utils,
	}
}

func NewAnalyticsEngine(
	log *logrus.Logger,
	br budgetRepository.Repository,
	tr transactionRepository.Repository,
	aggregator transactionService.IAggregator,
) IAnalyticsEngine {
	return &analyticsEngine{
		log:                   log,
		budgetRepository:      br,
		transactionRepository: tr,
		aggregator:            aggregator,
	}
}
