package handlerUtil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"FinanceTracker/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorHandler() *ErrorHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func respond(t *testing.T, handler fiber.Handler) (int, ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	var body ErrorResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	return resp.StatusCode, body
}

func TestHandleMapsErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{
			name:       "validation",
			err:        response.NewFieldError(http.StatusBadRequest, "amount", "amount must be greater than zero"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantField:  "amount",
		},
		{
			name:       "not found",
			err:        response.NewError(http.StatusNotFound, "budget not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "not owned",
			err:        response.NewError(http.StatusForbidden, "budget does not belong to user"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "conflict",
			err:        response.NewError(http.StatusConflict, "budget already exists for category"),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "fiber error",
			err:        fiber.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newErrorHandler()
			status, body := respond(t, func(c *fiber.Ctx) error {
				return h.Handle(c, "req-1", tt.err, c.Path(), "test")
			})

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantField, body.Field)
			assert.Empty(t, body.TraceID)
		})
	}
}

func TestHandleHidesInternalErrors(t *testing.T) {
	h := newErrorHandler()

	status, body := respond(t, func(c *fiber.Ctx) error {
		return h.Handle(c, "unknown", errors.New("pq: relation \"budgets\" does not exist"), c.Path(), "test")
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "An unexpected error occurred", body.Error)
	assert.NotEmpty(t, body.TraceID)
}

func TestHandleOperationFailureReusesRequestID(t *testing.T) {
	h := newErrorHandler()

	status, body := respond(t, func(c *fiber.Ctx) error {
		return h.Handle(c, "req-9", response.NewError(http.StatusInternalServerError, "failed to create budget"), c.Path(), "test")
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "failed to create budget", body.Error)
	assert.Equal(t, "req-9", body.TraceID)
}

func TestHandleValidationError(t *testing.T) {
	type request struct {
		Category string `validate:"required"`
	}
	err := validator.New().Struct(request{})
	require.Error(t, err)

	h := newErrorHandler()
	status, body := respond(t, func(c *fiber.Ctx) error {
		return h.HandleValidationError(c, "req-1", err, c.Path())
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Category", body.Field)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}
