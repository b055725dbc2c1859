package middleware

import (
	contextPkg "FinanceTracker/pkg/context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var sensitiveFields = []string{
	"password", "token", "secret", "key", "auth",
	"credential", "authorization", "phone",
}

// NewLoggingMiddleware writes one access log line per request, at a level
// chosen by the response status.
func (m *middleware) NewLoggingMiddleware(c *fiber.Ctx) error {
	start := time.Now()

	err := c.Next()

	status := c.Response().StatusCode()
	fields := logrus.Fields{
		"request_id":    m.GetRequestID(c),
		"method":        c.Method(),
		"path":          c.Path(),
		"status":        status,
		"latency_ms":    time.Since(start).Milliseconds(),
		"ip":            c.IP(),
		"user_agent":    c.Get("User-Agent"),
		"response_size": len(c.Response().Body()),
	}

	if userID := contextPkg.GetUserID(contextPkg.FromFiberCtx(c)); userID != "" {
		fields["user_id"] = userID
	}

	if body := c.Request().Body(); len(body) > 0 && !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fields["request_body"] = sanitizeRequestBody(body)
	}

	entry := m.log.WithFields(fields)
	switch {
	case status >= fiber.StatusInternalServerError:
		entry.Error("Server error")
	case status >= fiber.StatusBadRequest:
		entry.Warn("Client error")
	default:
		entry.Info("Success")
	}

	return err
}

func sanitizeRequestBody(body []byte) string {
	var jsonBody map[string]interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	for _, field := range sensitiveFields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[SECRET]"
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}
