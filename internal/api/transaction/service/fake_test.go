package transactionService

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/money"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeRepository struct {
	ledger     *fakeLedger
	categories *fakeCategories
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		ledger:     &fakeLedger{rows: map[string]entity.Transaction{}},
		categories: &fakeCategories{},
	}
}

func (r *fakeRepository) NewClient(tx bool) (transactionRepository.Client, error) {
	nop := func() error { return nil }
	return transactionRepository.Client{
		Transactions: r.ledger,
		Categories:   r.categories,
		Commit:       nop,
		Rollback:     nop,
	}, nil
}

// fakeLedger keeps rows in memory and lists them in the same order as the
// SQL store: date, then creation time, newest first.
type fakeLedger struct {
	rows map[string]entity.Transaction
	err  error
}

func (l *fakeLedger) put(txs ...entity.Transaction) {
	for _, t := range txs {
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Date(2024, 1, 1, 0, 0, len(l.rows), 0, time.UTC)
		}
		l.rows[t.ID] = t
	}
}

func (l *fakeLedger) list(keep func(entity.Transaction) bool) ([]entity.Transaction, error) {
	if l.err != nil {
		return nil, l.err
	}
	out := []entity.Transaction{}
	for _, t := range l.rows {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (l *fakeLedger) CreateTransaction(ctx context.Context, t entity.Transaction) error {
	if l.err != nil {
		return l.err
	}
	l.rows[t.ID] = t
	return nil
}

func (l *fakeLedger) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	if l.err != nil {
		return entity.Transaction{}, l.err
	}
	t, ok := l.rows[id]
	if !ok {
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	return t, nil
}

func (l *fakeLedger) GetTransactionsByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return l.list(func(t entity.Transaction) bool { return t.UserID == userID })
}

func (l *fakeLedger) GetTransactionsByUserAndType(ctx context.Context, userID string, transactionType entity.TransactionType) ([]entity.Transaction, error) {
	return l.list(func(t entity.Transaction) bool { return t.UserID == userID && t.Type == transactionType })
}

func (l *fakeLedger) GetTransactionsByCategory(ctx context.Context, userID string, category string) ([]entity.Transaction, error) {
	return l.list(func(t entity.Transaction) bool { return t.UserID == userID && t.Category == category })
}

func (l *fakeLedger) GetTransactionsByDateRange(ctx context.Context, userID string, startDate string, endDate string) ([]entity.Transaction, error) {
	return l.list(func(t entity.Transaction) bool {
		return t.UserID == userID && t.Date >= startDate && (endDate == "" || t.Date <= endDate)
	})
}

func (l *fakeLedger) UpdateTransaction(ctx context.Context, t entity.Transaction) error {
	if l.err != nil {
		return l.err
	}
	if _, ok := l.rows[t.ID]; !ok {
		return transaction.ErrTransactionNotFound
	}
	l.rows[t.ID] = t
	return nil
}

func (l *fakeLedger) DeleteTransaction(ctx context.Context, id string) error {
	if l.err != nil {
		return l.err
	}
	if _, ok := l.rows[id]; !ok {
		return transaction.ErrTransactionNotFound
	}
	delete(l.rows, id)
	return nil
}

func (l *fakeLedger) SumByType(ctx context.Context, userID string, transactionType entity.TransactionType) (float64, error) {
	rows, err := l.GetTransactionsByUserAndType(ctx, userID, transactionType)
	if err != nil {
		return 0, err
	}
	amounts := make([]float64, 0, len(rows))
	for _, t := range rows {
		amounts = append(amounts, t.Amount)
	}
	return money.Sum(amounts...), nil
}

func (l *fakeLedger) SumByCategory(ctx context.Context, userID string, transactionType entity.TransactionType) (map[string]float64, error) {
	rows, err := l.GetTransactionsByUserAndType(ctx, userID, transactionType)
	if err != nil {
		return nil, err
	}
	totals := money.NewTotals()
	for _, t := range rows {
		totals.Add(t.Category, t.Amount)
	}
	return totals.Map(), nil
}

type fakeCategories struct {
	rows []entity.Category
}

func (c *fakeCategories) CreateCategory(ctx context.Context, category entity.Category) error {
	for _, existing := range c.rows {
		if existing.UserID == category.UserID && existing.Name == category.Name {
			return transaction.ErrCategoryAlreadyExists
		}
	}
	c.rows = append(c.rows, category)
	return nil
}

func (c *fakeCategories) GetCategoriesByUserID(ctx context.Context, userID string) ([]entity.Category, error) {
	out := []entity.Category{}
	for _, category := range c.rows {
		if category.UserID == userID {
			out = append(out, category)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type sequentialIDs struct {
	next int
}

func (s *sequentialIDs) NewULIDFromTimestamp(t time.Time) (string, error) {
	s.next++
	return fmt.Sprintf("id-%d", s.next), nil
}

type recordingSpreadsheet struct {
	transactions []entity.Transaction
	summary      entity.FinancialSummary
}

func (r *recordingSpreadsheet) LedgerWorkbook(transactions []entity.Transaction, summary entity.FinancialSummary) ([]byte, error) {
	r.transactions = transactions
	r.summary = summary
	return []byte("workbook"), nil
}

type fixture struct {
	repo        *fakeRepository
	spreadsheet *recordingSpreadsheet
	service     ITransactionService
	aggregator  IAggregator
}

func newFixture() fixture {
	log := discardLogger()
	repo := newFakeRepository()
	sheet := &recordingSpreadsheet{}
	agg := NewAggregator(log, repo)

	return fixture{
		repo:        repo,
		spreadsheet: sheet,
		aggregator:  agg,
		service:     NewTransactionService(log, repo, agg, &sequentialIDs{}, sheet),
	}
}
