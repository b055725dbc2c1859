package budgetRepository

import (
	"FinanceTracker/database"
	"FinanceTracker/internal/api/budget"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BudgetDB struct {
	ID              sql.NullString  `db:"id"`
	UserID          sql.NullString  `db:"user_id"`
	Category        sql.NullString  `db:"category"`
	AllocatedAmount sql.NullFloat64 `db:"allocated_amount"`
	Period          sql.NullString  `db:"period"`
	StartDate       sql.NullString  `db:"start_date"`
	EndDate         sql.NullString  `db:"end_date"`
	CreatedAt       sql.NullTime    `db:"created_at"`
}

func (r *budgetRepository) CreateBudget(c context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)
	createdAt := b.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	argsKV := map[string]interface{}{
		"id":               b.ID,
		"user_id":          b.UserID,
		"category":         b.Category,
		"allocated_amount": b.AllocatedAmount,
		"period":           string(b.Period),
		"start_date":       b.StartDate,
		"end_date":         sql.NullString{String: b.EndDate, Valid: b.EndDate != ""},
		"created_at":       createdAt,
	}

	query, args, err := sqlx.Named(queryCreateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBudget")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		if database.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    b.UserID,
				"category":   b.Category,
			}).Warn("Budget already exists for category")
			return budget.ErrBudgetAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating budget")
		return err
	}

	return nil
}

func (r *budgetRepository) GetBudgetByID(c context.Context, id string) (entity.Budget, error) {
	return r.getOne(c, "GetBudgetByID", queryGetBudgetByID, map[string]interface{}{"id": id})
}

func (r *budgetRepository) GetBudgetByUserAndCategory(c context.Context, userID string, category string) (entity.Budget, error) {
	return r.getOne(c, "GetBudgetByUserAndCategory", queryGetBudgetByUserAndCategory, map[string]interface{}{
		"user_id":  userID,
		"category": category,
	})
}

func (r *budgetRepository) getOne(c context.Context, op string, namedQuery string, argsKV map[string]interface{}) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var row BudgetDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.Budget{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug(op + " no rows found")
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.Budget{}, err
	}

	return makeBudget(row), nil
}

func (r *budgetRepository) GetBudgetsByUserID(c context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []BudgetDB

	query, args, err := sqlx.Named(queryGetBudgetsByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserID execution err")
		return nil, err
	}

	budgets := make([]entity.Budget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, makeBudget(row))
	}

	return budgets, nil
}

func (r *budgetRepository) UpdateAllocation(c context.Context, id string, allocatedAmount float64) error {
	return r.exec(c, "UpdateAllocation", queryUpdateAllocation, map[string]interface{}{
		"id":               id,
		"allocated_amount": allocatedAmount,
	})
}

func (r *budgetRepository) DeleteBudget(c context.Context, id string) error {
	return r.exec(c, "DeleteBudget", queryDeleteBudget, map[string]interface{}{"id": id})
}

func (r *budgetRepository) DeleteBudgetByUserAndCategory(c context.Context, userID string, category string) error {
	return r.exec(c, "DeleteBudgetByUserAndCategory", queryDeleteBudgetByUserAndCategory, map[string]interface{}{
		"user_id":  userID,
		"category": category,
	})
}

// exec runs a statement that must touch exactly one budget.
func (r *budgetRepository) exec(c context.Context, op string, namedQuery string, argsKV map[string]interface{}) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn(op + " no rows affected")
		return budget.ErrBudgetNotFound
	}

	return nil
}

// makeBudget maps a row to a Budget. A NULL end_date is an open-ended
// window and a missing period reads as monthly.
func makeBudget(row BudgetDB) entity.Budget {
	period := entity.BudgetPeriod(row.Period.String)
	if !row.Period.Valid || period == "" {
		period = entity.BudgetPeriodMonthly
	}

	return entity.Budget{
		ID:              row.ID.String,
		UserID:          row.UserID.String,
		Category:        row.Category.String,
		AllocatedAmount: row.AllocatedAmount.Float64,
		Period:          period,
		StartDate:       row.StartDate.String,
		EndDate:         row.EndDate.String,
		CreatedAt:       row.CreatedAt.Time,
	}
}
