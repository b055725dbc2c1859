package transactionRepository

import (
	"FinanceTracker/database"
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CategoryDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Color     sql.NullString `db:"color"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *categoryRepository) CreateCategory(c context.Context, category entity.Category) error {
	requestID := contextPkg.GetRequestID(c)
	createdAt := category.CreatedAt
	if createdAt.IsZero() {
		createdAt = now()
	}

	query, args, err := sqlx.Named(queryCreateCategory, map[string]interface{}{
		"id":         category.ID,
		"user_id":    category.UserID,
		"name":       category.Name,
		"color":      category.Color,
		"created_at": createdAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCategory")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		if database.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       category.Name,
			}).Warn("Category already exists")
			return transaction.ErrCategoryAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}

func (r *categoryRepository) GetCategoriesByUserID(c context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []CategoryDB

	query, args, err := sqlx.Named(queryGetCategoriesByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByUserID execution err")
		return nil, err
	}

	categories := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, makeCategory(row))
	}

	return categories, nil
}

func makeCategory(row CategoryDB) entity.Category {
	color := row.Color.String
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	return entity.Category{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Name:      row.Name.String,
		Color:     color,
		CreatedAt: row.CreatedAt.Time,
	}
}
