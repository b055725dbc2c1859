package authService

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	jwtPkg "FinanceTracker/pkg/jwt"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *authDomainImpl) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, auth.ErrLogin
	}

	user, err := repo.Users.GetByUsername(c, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login for unknown username")
			return auth.LoginUserResponse{}, auth.ErrInvalidCredentials
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by username")
		return auth.LoginUserResponse{}, auth.ErrLogin
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidCredentials
	}

	tokenID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate token id")
		return auth.LoginUserResponse{}, auth.ErrLogin
	}

	token, expired, err := jwtPkg.Sign(makeClaims(user, tokenID), jwtPkg.AccessTokenTTL())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, auth.ErrLogin
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Token created")

	expiresAt := time.Unix(expired, 0).UTC()
	return auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresAt:        expiresAt,
		ExpiresInMinutes: time.Until(expiresAt).Minutes(),
	}, nil
}

func makeClaims(user entity.User, tokenID string) map[string]interface{} {
	return map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
		"jti":      tokenID,
	}
}

func (s *authDomainImpl) Logout(c context.Context, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(c)
	if s.redisServer == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Error("Logout without a token deny-list")
		return auth.ErrLogout
	}

	if err := s.redisServer.RevokeToken(c, user.TokenID, time.Until(user.ExpiresAt)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to revoke token")
		return auth.ErrLogout
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User logged out")
	return nil
}
