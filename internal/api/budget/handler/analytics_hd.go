package budgetHandler

import (
	"FinanceTracker/internal/api/budget"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/handlerUtil"
	jwtPkg "FinanceTracker/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

func (h *BudgetHandler) GetWarnings(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	warnings, err := h.analytics.Warnings(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_budget_warnings")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, budget.WarningListResponse{Warnings: warnings})
	}
}

func (h *BudgetHandler) GetOverspent(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	overspent, err := h.analytics.OverspentCategories(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_overspent_categories")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, budget.OverspentListResponse{Overspent: overspent})
	}
}

func (h *BudgetHandler) GetBreakdown(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	breakdown, err := h.analytics.SpendingBreakdown(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_spending_breakdown")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, budget.BreakdownResponse{Categories: breakdown})
	}
}

// GetDashboard loads the ledger summary and budget analytics
// concurrently; warnings are derived from the same analytics. The first
// failure cancels the other load.
func (h *BudgetHandler) GetDashboard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var (
		summary   entity.FinancialSummary
		analytics []entity.BudgetAnalytics
	)

	g, gctx := errgroup.WithContext(c)
	g.Go(func() error {
		var err error
		summary, err = h.aggregator.FinancialSummary(gctx, userData.ID)
		return err
	})
	g.Go(func() error {
		var err error
		analytics, err = h.analytics.AnalyticsForUser(gctx, userData.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_dashboard")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, budget.DashboardResponse{
			Summary:   summary,
			TotalUPI:  summary.ExpenseByPaymentMethod["UPI"],
			TotalCash: summary.ExpenseByPaymentMethod["Cash"],
			Budgets:   analytics,
			Warnings:  entity.WarningsFor(analytics),
		})
	}
}
