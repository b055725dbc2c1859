package middleware

import (
	"FinanceTracker/pkg/redis"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 50
	defaultBurst             = 100
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewLoggingMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimiter         *rateLimiter
	revocations         redis.IRedis
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

// New builds the shared middleware set. revocations may be nil, in which
// case logged-out tokens stay valid until they expire.
func New(logger *logrus.Logger, revocations redis.IRedis) Middleware {
	return &middleware{
		rateLimiter:         newRateLimiter(rateFromEnv(), burstFromEnv()),
		revocations:         revocations,
		requestIDMiddleware: NewRequestIDMiddleware(),
		log:                 logger,
	}
}

func rateFromEnv() rate.Limit {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return defaultRequestsPerSecond
	}
	return rate.Limit(rps)
}

func burstFromEnv() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return defaultBurst
	}
	return burst
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
