package budgetRepository

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
		Budgets:  &budgetRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// BudgetStore persists budgets. GetBudgetsByUserID lists newest first.
type BudgetStore interface {
	CreateBudget(ctx context.Context, budget entity.Budget) error
	GetBudgetByID(ctx context.Context, id string) (entity.Budget, error)
	GetBudgetsByUserID(ctx context.Context, userID string) ([]entity.Budget, error)
	GetBudgetByUserAndCategory(ctx context.Context, userID string, category string) (entity.Budget, error)
	UpdateAllocation(ctx context.Context, id string, allocatedAmount float64) error
	DeleteBudget(ctx context.Context, id string) error
	DeleteBudgetByUserAndCategory(ctx context.Context, userID string, category string) error
}

type Client struct {
	Budgets BudgetStore

	Commit   func() error
	Rollback func() error
}

type budgetRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
