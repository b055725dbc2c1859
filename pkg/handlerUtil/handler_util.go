package handlerUtil

import (
	"FinanceTracker/pkg/log"
	"FinanceTracker/pkg/response"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Kind names the error class a status code stands for.
func Kind(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusRequestTimeout:
		return "TIMEOUT"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL_ERROR"
		}
		return ""
	}
}

// Handle writes err as a JSON error. Server-side failures are logged with a
// trace id that is returned to the client in place of any internal detail.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		if respErr.Code >= http.StatusInternalServerError {
			traceID := log.ErrorWithTraceID(h.logger, fields, "Operation failed")
			return c.Status(respErr.Code).JSON(ErrorResponse{
				Error:   respErr.Error(),
				Code:    Kind(respErr.Code),
				TraceID: traceID,
			})
		}

		fields["code"] = respErr.Code
		h.logger.WithFields(fields).Warn("Operation rejected")
		return c.Status(respErr.Code).JSON(ErrorResponse{
			Error: respErr.Error(),
			Code:  Kind(respErr.Code),
			Field: respErr.Field,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		h.logger.WithFields(fields).Warn("Request rejected")
		return c.Status(fiberErr.Code).JSON(ErrorResponse{
			Error: fiberErr.Message,
			Code:  Kind(fiberErr.Code),
		})
	}

	traceID := log.ErrorWithTraceID(h.logger, fields, "Unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		Code:    Kind(fiber.StatusInternalServerError),
		TraceID: traceID,
	})
}

// HandleValidationError reports the first failing field of a validator
// error, or the message of any other error, as a 400.
func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	res := ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  Kind(fiber.StatusBadRequest),
	}

	var validationErrs validator.ValidationErrors
	var respErr *response.Error
	switch {
	case errors.As(err, &validationErrs) && len(validationErrs) > 0:
		fe := validationErrs[0]
		res.Field = fe.Field()
		res.Error = fmt.Sprintf("Validation failed: %s failed on the '%s' rule", fe.Field(), fe.Tag())
	case errors.As(err, &respErr):
		res.Field = respErr.Field
	}

	return c.Status(fiber.StatusBadRequest).JSON(res)
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(ErrorResponse{
		Error: utils.StatusMessage(fiber.StatusRequestTimeout),
		Code:  Kind(fiber.StatusRequestTimeout),
	})
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error: message,
		Code:  Kind(fiber.StatusUnauthorized),
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
