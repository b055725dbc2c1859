package budgetHandler

import (
	budgetService "FinanceTracker/internal/api/budget/service"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
	analytics     budgetService.IAnalyticsEngine
	aggregator    transactionService.IAggregator
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
	analytics budgetService.IAnalyticsEngine,
	aggregator transactionService.IAggregator,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
		analytics:     analytics,
		aggregator:    aggregator,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budgets := srv.Group("/budgets", h.middleware.NewTokenMiddleware)

	budgets.Post("/", h.CreateBudget)
	budgets.Get("/", h.GetBudgets)
	budgets.Get("/warnings", h.GetWarnings)
	budgets.Get("/overspent", h.GetOverspent)
	budgets.Get("/breakdown", h.GetBreakdown)
	budgets.Patch("/:id", h.UpdateAllocation)
	budgets.Delete("/category/:category", h.DeleteBudgetByCategory)
	budgets.Delete("/:id", h.DeleteBudget)

	srv.Get("/dashboard", h.middleware.NewTokenMiddleware, h.GetDashboard)
}
