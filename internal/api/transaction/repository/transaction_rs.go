package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/money"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID              sql.NullString  `db:"id"`
	UserID          sql.NullString  `db:"user_id"`
	Amount          sql.NullFloat64 `db:"amount"`
	Category        sql.NullString  `db:"category"`
	Date            sql.NullString  `db:"date"`
	Description     sql.NullString  `db:"description"`
	PaymentMethod   sql.NullString  `db:"payment_method"`
	TransactionType sql.NullString  `db:"transaction_type"`
	CreatedAt       sql.NullTime    `db:"created_at"`
	UpdatedAt       sql.NullTime    `db:"updated_at"`
}

type categoryAmountDB struct {
	Category sql.NullString `db:"category"`
	Amount   float64        `db:"amount"`
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *transactionRepository) CreateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = now()
	}

	argsKV := map[string]interface{}{
		"id":               t.ID,
		"user_id":          t.UserID,
		"amount":           t.Amount,
		"category":         t.Category,
		"date":             t.Date,
		"description":      nullableString(t.Description),
		"payment_method":   t.PaymentMethod,
		"transaction_type": string(t.Type),
		"created_at":       createdAt,
		"updated_at":       createdAt,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	query, args, err := sqlx.Named(queryGetTransactionByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactionsByUserID(c context.Context, userID string) ([]entity.Transaction, error) {
	return r.list(c, "GetTransactionsByUserID", queryGetTransactionsByUserID, map[string]interface{}{
		"user_id": userID,
	})
}

func (r *transactionRepository) GetTransactionsByUserAndType(c context.Context, userID string, transactionType entity.TransactionType) ([]entity.Transaction, error) {
	return r.list(c, "GetTransactionsByUserAndType", queryGetTransactionsByUserAndType, map[string]interface{}{
		"user_id":          userID,
		"transaction_type": string(transactionType),
	})
}

func (r *transactionRepository) GetTransactionsByCategory(c context.Context, userID string, category string) ([]entity.Transaction, error) {
	return r.list(c, "GetTransactionsByCategory", queryGetTransactionsByCategory, map[string]interface{}{
		"user_id":  userID,
		"category": category,
	})
}

func (r *transactionRepository) GetTransactionsByDateRange(c context.Context, userID string, startDate string, endDate string) ([]entity.Transaction, error) {
	if endDate == "" {
		return r.list(c, "GetTransactionsByDateRange", queryGetTransactionsFromDate, map[string]interface{}{
			"user_id":    userID,
			"start_date": startDate,
		})
	}

	return r.list(c, "GetTransactionsByDateRange", queryGetTransactionsBetweenDates, map[string]interface{}{
		"user_id":    userID,
		"start_date": startDate,
		"end_date":   endDate,
	})
}

func (r *transactionRepository) list(c context.Context, op string, namedQuery string, argsKV map[string]interface{}) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               t.ID,
		"amount":           t.Amount,
		"category":         t.Category,
		"date":             t.Date,
		"description":      nullableString(t.Description),
		"payment_method":   t.PaymentMethod,
		"transaction_type": string(t.Type),
		"updated_at":       now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	return r.execAffectingOne(c, "UpdateTransaction", query, args)
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteTransaction, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	return r.execAffectingOne(c, "DeleteTransaction", query, args)
}

func (r *transactionRepository) execAffectingOne(c context.Context, op string, query string, args []interface{}) error {
	requestID := contextPkg.GetRequestID(c)

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
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) SumByType(c context.Context, userID string, transactionType entity.TransactionType) (float64, error) {
	requestID := contextPkg.GetRequestID(c)
	var amounts []float64

	query, args, err := sqlx.Named(querySumByType, map[string]interface{}{
		"user_id":          userID,
		"transaction_type": string(transactionType),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByType named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &amounts, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByType execution err")
		return 0, err
	}

	return money.Sum(amounts...), nil
}

func (r *transactionRepository) SumByCategory(c context.Context, userID string, transactionType entity.TransactionType) (map[string]float64, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []categoryAmountDB

	query, args, err := sqlx.Named(querySumByCategory, map[string]interface{}{
		"user_id":          userID,
		"transaction_type": string(transactionType),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByCategory named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByCategory execution err")
		return nil, err
	}

	totals := money.NewTotals()
	for _, row := range rows {
		totals.Add(row.Category.String, row.Amount)
	}

	return totals.Map(), nil
}

// makeTransaction is the only place rows become entities. Rows written
// before transaction_type existed have it NULL and are expenses; the same
// goes for any value other than "income".
func (r *transactionRepository) makeTransaction(row TransactionDB) entity.Transaction {
	transactionType := entity.TransactionTypeExpense
	if row.TransactionType.Valid && row.TransactionType.String == string(entity.TransactionTypeIncome) {
		transactionType = entity.TransactionTypeIncome
	}

	return entity.Transaction{
		ID:            row.ID.String,
		UserID:        row.UserID.String,
		Amount:        row.Amount.Float64,
		Category:      row.Category.String,
		Date:          row.Date.String,
		Description:   row.Description.String,
		PaymentMethod: row.PaymentMethod.String,
		Type:          transactionType,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
