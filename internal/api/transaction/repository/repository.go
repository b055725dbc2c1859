package transactionRepository

import (
	"FinanceTracker/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Transactions: &transactionRepository{q: sqlExecutor, log: r.log},
		Categories:   &categoryRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

// TransactionStore is the ledger side of the store. List methods return
// rows newest date first; a zero result is an empty slice, not an error.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, transaction entity.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
	GetTransactionsByUserAndType(ctx context.Context, userID string, transactionType entity.TransactionType) ([]entity.Transaction, error)
	GetTransactionsByCategory(ctx context.Context, userID string, category string) ([]entity.Transaction, error)
	// GetTransactionsByDateRange treats an empty endDate as unbounded.
	GetTransactionsByDateRange(ctx context.Context, userID string, startDate string, endDate string) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction entity.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	SumByType(ctx context.Context, userID string, transactionType entity.TransactionType) (float64, error)
	SumByCategory(ctx context.Context, userID string, transactionType entity.TransactionType) (map[string]float64, error)
}

type CategoryStore interface {
	CreateCategory(ctx context.Context, category entity.Category) error
	GetCategoriesByUserID(ctx context.Context, userID string) ([]entity.Category, error)
}

type Client struct {
	Transactions TransactionStore
	Categories   CategoryStore

	Commit   func() error
	Rollback func() error
}

type transactionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
