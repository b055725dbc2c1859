package authRepository

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"FinanceTracker/database"
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserStore(t *testing.T) UserStore {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		DSN:    database.SQLiteDSN(filepath.Join(t.TempDir(), "users.db")),
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client, err := New(db, log).NewClient(false)
	require.NoError(t, err)
	return client.Users
}

func alice() entity.User {
	return entity.User{
		ID:        "01HUSER0000000000000000001",
		Username:  "alice",
		Email:     "alice@example.com",
		Phone:     "+919876543210",
		Password:  "hash",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestUserLookups(t *testing.T) {
	store := newUserStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateUser(ctx, alice()))

	byID, err := store.GetByID(ctx, alice().ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "hash", byID.Password)
	assert.True(t, byID.CreatedAt.Equal(alice().CreatedAt))

	byName, err := store.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice().ID, byName.ID)

	byEmail, err := store.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice().ID, byEmail.ID)

	_, err = store.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestCreateUserUniqueness(t *testing.T) {
	store := newUserStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateUser(ctx, alice()))

	sameName := alice()
	sameName.ID = "02"
	sameName.Email = "other@example.com"
	assert.ErrorIs(t, store.CreateUser(ctx, sameName), auth.ErrUsernameAlreadyExists)

	sameEmail := alice()
	sameEmail.ID = "03"
	sameEmail.Username = "alice2"
	assert.ErrorIs(t, store.CreateUser(ctx, sameEmail), auth.ErrEmailAlreadyExists)
}
