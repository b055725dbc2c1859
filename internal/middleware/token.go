package middleware

import (
	"FinanceTracker/internal/entity"
	jwtPkg "FinanceTracker/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

func (m *middleware) unauthorized(ctx *fiber.Ctx, reason string) error {
	m.log.WithFields(logrus.Fields{
		"request_id": m.GetRequestID(ctx),
		"path":       ctx.Path(),
		"client_ip":  ctx.IP(),
		"reason":     reason,
	}).Warn("Token rejected")

	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized, access token invalid or expired",
		"code":  "UNAUTHORIZED",
	})
}

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		return m.unauthorized(ctx, err.Error())
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return m.unauthorized(ctx, "invalid token claims")
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)
	tokenID, _ := claims["jti"].(string)
	if id == "" || email == "" || username == "" || tokenID == "" {
		return m.unauthorized(ctx, "token claims are missing required fields")
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return m.unauthorized(ctx, "token has no expiry")
	}

	if m.revocations != nil {
		revoked, err := m.revocations.IsTokenRevoked(ctx.UserContext(), tokenID)
		if err != nil {
			return m.unauthorized(ctx, "revocation check failed: "+err.Error())
		}
		if revoked {
			return m.unauthorized(ctx, "token revoked")
		}
	}

	ctx.Locals("user", entity.UserLoginData{
		ID:        id,
		Username:  username,
		Email:     email,
		TokenID:   tokenID,
		ExpiresAt: expiresAt.Time.In(time.UTC),
	})

	return ctx.Next()
}
