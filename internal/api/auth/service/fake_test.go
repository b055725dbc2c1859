package authService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/bcrypt"
	"FinanceTracker/pkg/phone"

	"github.com/sirupsen/logrus"
)

type fakeUsers struct {
	byID map[string]entity.User
	err  error
}

func (f *fakeUsers) CreateUser(ctx context.Context, user entity.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.byID {
		if u.Username == user.Username {
			return auth.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return auth.ErrEmailAlreadyExists
		}
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (entity.User, error) {
	return f.find(func(u entity.User) bool { return u.ID == id })
}

func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	return f.find(func(u entity.User) bool { return u.Username == username })
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return f.find(func(u entity.User) bool { return u.Email == email })
}

func (f *fakeUsers) find(match func(entity.User) bool) (entity.User, error) {
	if f.err != nil {
		return entity.User{}, f.err
	}
	for _, u := range f.byID {
		if match(u) {
			return u, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

type fakeRepository struct {
	users *fakeUsers
}

func (f *fakeRepository) NewClient(tx bool) (authRepository.Client, error) {
	noop := func() error { return nil }
	return authRepository.Client{Users: f.users, Commit: noop, Rollback: noop}, nil
}

type denyList struct {
	revoked map[string]time.Duration
	err     error
}

func (d *denyList) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if d.err != nil {
		return d.err
	}
	d.revoked[tokenID] = ttl
	return nil
}

func (d *denyList) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := d.revoked[tokenID]
	return ok, nil
}

func (d *denyList) Close() error { return nil }

type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) NewULIDFromTimestamp(t time.Time) (string, error) {
	s.n++
	return fmt.Sprintf("id-%d", s.n), nil
}

var errStoreDown = errors.New("connection refused")

type fixture struct {
	users   *fakeUsers
	revoked *denyList
	service AuthService
}

func newFixture() *fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	users := &fakeUsers{byID: map[string]entity.User{}}
	revoked := &denyList{revoked: map[string]time.Duration{}}

	return &fixture{
		users:   users,
		revoked: revoked,
		service: New(log,
			&fakeRepository{users: users},
			revoked,
			bcrypt.NewWithCost(bcrypt.MinCost),
			phone.NewWithRegion("IN"),
			&sequentialIDs{},
		),
	}
}
