package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"FinanceTracker/internal/entity"
	jwtPkg "FinanceTracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denyList struct {
	revoked map[string]bool
}

func (d *denyList) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	d.revoked[tokenID] = true
	return nil
}

func (d *denyList) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return d.revoked[tokenID], nil
}

func (d *denyList) Close() error { return nil }

func newTestMiddleware(t *testing.T, revocations *denyList) Middleware {
	t.Helper()
	t.Setenv(AccessTokenSecret, "test-secret")

	log := logrus.New()
	log.SetOutput(io.Discard)

	if revocations == nil {
		return New(log, nil)
	}
	return New(log, revocations)
}

func protectedApp(m Middleware) *fiber.App {
	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/me", m.NewTokenMiddleware, func(c *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(c)
		if err != nil {
			return err
		}
		return c.JSON(user)
	})
	return app
}

func signToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	token, _, err := jwtPkg.Sign(claims, time.Hour)
	require.NoError(t, err)
	return token
}

func validClaims() map[string]interface{} {
	return map[string]interface{}{
		"id":       "user-1",
		"email":    "ana@example.com",
		"username": "ana",
		"jti":      "token-1",
	}
}

func get(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestTokenMiddleware(t *testing.T) {
	m := newTestMiddleware(t, nil)
	app := protectedApp(m)

	resp := get(t, app, signToken(t, validClaims()))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDKey))

	var user entity.UserLoginData
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &user))
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "token-1", user.TokenID)
}

func TestTokenMiddlewareRejects(t *testing.T) {
	m := newTestMiddleware(t, nil)
	app := protectedApp(m)

	missingJTI := validClaims()
	delete(missingJTI, "jti")

	tests := []struct {
		name  string
		token string
	}{
		{name: "no header", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "missing token id", token: signToken(t, missingJTI)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, app, tt.token)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestTokenMiddlewareRevokedToken(t *testing.T) {
	revocations := &denyList{revoked: map[string]bool{"token-1": true}}
	app := protectedApp(newTestMiddleware(t, revocations))

	resp := get(t, app, signToken(t, validClaims()))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	other := validClaims()
	other["jti"] = "token-2"
	resp = get(t, app, signToken(t, other))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestIDIsEchoed(t *testing.T) {
	app := protectedApp(newTestMiddleware(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDKey, "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-42", resp.Header.Get(RequestIDKey))
}

func TestRateLimiter(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "0.001")
	t.Setenv("RATE_LIMIT_BURST", "2")

	m := newTestMiddleware(t, nil)
	app := fiber.New()
	app.Get("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, statuses)
}

func TestSanitizeRequestBody(t *testing.T) {
	got := sanitizeRequestBody([]byte(`{"username":"ana","password":"hunter2"}`))
	assert.JSONEq(t, `{"username":"ana","password":"[SECRET]"}`, got)

	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody([]byte("plain")))
}
