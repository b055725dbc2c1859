package authRepository

import (
	"FinanceTracker/database"
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID        sql.NullString `db:"id"`
	Username  sql.NullString `db:"username"`
	Email     sql.NullString `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Password  sql.NullString `db:"password"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *userRepository) CreateUser(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	argsKV := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"phone":      user.Phone,
		"password":   user.Password,
		"created_at": createdAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		if database.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("User already exists")
			return uniqueUserError(err)
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

// uniqueUserError names the violated column. Postgres reports the
// constraint (users_username_key) and sqlite the column (users.username).
func uniqueUserError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "username"):
		return auth.ErrUsernameAlreadyExists
	case strings.Contains(msg, "email"):
		return auth.ErrEmailAlreadyExists
	default:
		return auth.ErrUserAlreadyExists
	}
}

func (r *userRepository) GetByID(c context.Context, id string) (entity.User, error) {
	return r.getOne(c, "GetByID", queryGetByID, map[string]interface{}{"id": id})
}

func (r *userRepository) GetByUsername(c context.Context, username string) (entity.User, error) {
	return r.getOne(c, "GetByUsername", queryGetByUsername, map[string]interface{}{"username": username})
}

func (r *userRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	return r.getOne(c, "GetByEmail", queryGetByEmail, map[string]interface{}{"email": email})
}

func (r *userRepository) getOne(c context.Context, op, namedQuery string, argsKV map[string]interface{}) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var user UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn(op + " no rows found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *userRepository) makeUser(u UserDB) entity.User {
	return entity.User{
		ID:        u.ID.String,
		Username:  u.Username.String,
		Email:     u.Email.String,
		Phone:     u.Phone.String,
		Password:  u.Password.String,
		CreatedAt: u.CreatedAt.Time,
	}
}
