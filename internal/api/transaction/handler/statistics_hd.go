package transactionHandler

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/handlerUtil"
	jwtPkg "FinanceTracker/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TransactionHandler) GetSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	summary, err := h.aggregator.FinancialSummary(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, transaction.NewSummaryResponse(summary))
	}
}

func (h *TransactionHandler) GetStatistics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	summary, err := h.aggregator.FinancialSummary(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_statistics")
	}

	top, err := h.aggregator.TopCategories(c, userData.ID, topCategoriesLimit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_statistics")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, transaction.StatisticsResponse{
			FinancialSummary:      summary,
			TopSpendingCategories: top,
		})
	}
}

func (h *TransactionHandler) GetDailySeries(ctx *fiber.Ctx) error {
	return h.series(ctx, "get_daily_series", h.aggregator.DailySeries)
}

func (h *TransactionHandler) GetMonthlySeries(ctx *fiber.Ctx) error {
	return h.series(ctx, "get_monthly_series", h.aggregator.MonthlySeries)
}

func (h *TransactionHandler) series(ctx *fiber.Ctx, operation string, build func(context.Context, string) ([]entity.SeriesPoint, error)) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	points, err := build(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), operation)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, transaction.NewSeriesResponse(points))
	}
}
