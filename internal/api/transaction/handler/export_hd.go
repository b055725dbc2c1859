package transactionHandler

import (
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/handlerUtil"
	jwtPkg "FinanceTracker/pkg/jwt"
	"FinanceTracker/pkg/spreadsheet"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TransactionHandler) ExportTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	workbook, err := h.transactionService.ExportTransactions(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_transactions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(fiber.HeaderContentType, spreadsheet.ContentType)
		ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=transactions-%s.xlsx", time.Now().Format("2006-01-02")))
		return ctx.Status(fiber.StatusOK).Send(workbook)
	}
}
