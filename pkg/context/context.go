package context

import (
	"context"

	"FinanceTracker/internal/entity"

	"github.com/gofiber/fiber/v2"
)

type key int

const (
	requestIDKey key = iota
	userIDKey
)

// RequestIDLocal is the fiber locals key and header the request id
// middleware uses.
const RequestIDLocal = "X-Request-ID"

const unknown = "unknown"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return unknown
	}
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return unknown
	}
	return requestID
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID is empty for unauthenticated requests.
func GetUserID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// FromFiberCtx derives the request context: the request id stored by the
// request id middleware and, past the token middleware, the caller's id.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()

	requestID, ok := c.Locals(RequestIDLocal).(string)
	if !ok || requestID == "" {
		requestID = c.Get(RequestIDLocal)
		if requestID == "" {
			requestID = unknown
		}
	}
	ctx = WithRequestID(ctx, requestID)

	if user, ok := c.Locals("user").(entity.UserLoginData); ok && user.ID != "" {
		ctx = WithUserID(ctx, user.ID)
	}

	return ctx
}
