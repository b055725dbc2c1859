package middleware

import (
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

const RequestIDKey = contextPkg.RequestIDLocal

// NewRequestIDMiddleware reuses an incoming X-Request-ID or mints a ULID,
// and echoes it on the response.
func NewRequestIDMiddleware() fiber.Handler {
	utilsInstance := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if requestID == "" {
			requestID, _ = utilsInstance.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
