package transactionHandler

import (
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const topCategoriesLimit = 5

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
	aggregator         transactionService.IAggregator
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
	aggregator transactionService.IAggregator,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
		aggregator:         aggregator,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions", h.middleware.NewTokenMiddleware)

	transactions.Post("/", h.CreateTransaction)
	transactions.Get("/", h.GetTransactions)
	transactions.Get("/summary", h.GetSummary)
	transactions.Get("/statistics", h.GetStatistics)
	transactions.Get("/daily", h.GetDailySeries)
	transactions.Get("/monthly", h.GetMonthlySeries)
	transactions.Get("/export", h.ExportTransactions)
	transactions.Get("/:id", h.GetTransactionByID)
	transactions.Put("/:id", h.UpdateTransaction)
	transactions.Delete("/:id", h.DeleteTransaction)

	categories := srv.Group("/categories", h.middleware.NewTokenMiddleware)

	categories.Get("/", h.GetCategories)
	categories.Post("/", h.CreateCategory)
}
