package authService

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/guard"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.CreateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return entity.User{}, guard.NewValidationError("username", "username is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	phoneNumber, err := s.phoneParser.Normalize(req.Phone)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid phone number on register")
		return entity.User{}, auth.ErrInvalidPhoneNumber
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, auth.ErrRegister
	}

	if err := s.ensureAvailable(c, repo.Users.GetByUsername, username, auth.ErrUsernameAlreadyExists); err != nil {
		return entity.User{}, guard.Classify(err, auth.ErrRegister)
	}
	if err := s.ensureAvailable(c, repo.Users.GetByEmail, email, auth.ErrEmailAlreadyExists); err != nil {
		return entity.User{}, guard.Classify(err, auth.ErrRegister)
	}

	hashed, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return entity.User{}, auth.ErrRegister
	}

	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	id, err := s.utils.NewULIDFromTimestamp(createdAt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate user id")
		return entity.User{}, auth.ErrRegister
	}

	user := entity.User{
		ID:        id,
		Username:  username,
		Email:     email,
		Phone:     phoneNumber,
		Password:  hashed,
		CreatedAt: createdAt,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		return entity.User{}, guard.Classify(err, auth.ErrRegister)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User registered")

	return user, nil
}

// ensureAvailable fails with taken when lookup finds a user for value.
func (s *userDomainImpl) ensureAvailable(c context.Context, lookup func(context.Context, string) (entity.User, error), value string, taken error) error {
	_, err := lookup(c, value)
	switch {
	case err == nil:
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      taken.Error(),
		}).Warn("Register rejected")
		return taken
	case errors.Is(err, auth.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (s *userDomainImpl) GetByID(c context.Context, id string) (entity.User, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, auth.ErrGetUser
	}

	user, err := repo.Users.GetByID(c, id)
	if err != nil {
		return entity.User{}, guard.Classify(err, auth.ErrGetUser)
	}
	return user, nil
}
