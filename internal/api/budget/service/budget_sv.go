package budgetService

import (
	"FinanceTracker/internal/api/budget"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/guard"
	contextPkg "FinanceTracker/pkg/context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func parsePeriod(raw string) (entity.BudgetPeriod, error) {
	if strings.TrimSpace(raw) == "" {
		return entity.BudgetPeriodMonthly, nil
	}
	return guard.ParseBudgetPeriod(raw)
}

func validateBudget(req budget.CreateBudgetRequest) (string, entity.BudgetPeriod, error) {
	category, err := guard.Category(req.Category)
	if err != nil {
		return "", "", err
	}
	if err := guard.Amount("allocated_amount", req.AllocatedAmount); err != nil {
		return "", "", err
	}
	if err := guard.Date("start_date", req.StartDate); err != nil {
		return "", "", err
	}
	if err := guard.OptionalDate("end_date", req.EndDate); err != nil {
		return "", "", err
	}
	if req.EndDate != "" && req.EndDate < req.StartDate {
		return "", "", guard.NewValidationError("end_date", "end_date must not be before start_date")
	}

	period, err := parsePeriod(req.Period)
	if err != nil {
		return "", "", err
	}

	return category, period, nil
}

// CreateBudget refuses a second budget for a category the user already
// budgets, leaving the existing one as it was.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req budget.CreateBudgetRequest) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	category, period, err := validateBudget(req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"field":      guard.FieldOf(err),
			"error":      err.Error(),
		}).Warn("Invalid budget data")
		return entity.Budget{}, err
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, budget.ErrCreateBudget
	}

	_, err = repo.Budgets.GetBudgetByUserAndCategory(ctx, userID, category)
	switch {
	case err == nil:
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   category,
		}).Warn("Budget already exists for category")
		return entity.Budget{}, budget.ErrBudgetAlreadyExists
	case !guard.IsNotFound(err):
		return entity.Budget{}, budget.ErrCreateBudget
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Budget{}, budget.ErrCreateBudget
	}

	b := entity.Budget{
		ID:              ULID,
		UserID:          userID,
		Category:        category,
		AllocatedAmount: req.AllocatedAmount,
		Period:          period,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := repo.Budgets.CreateBudget(ctx, b); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create budget")
		return entity.Budget{}, guard.Classify(err, budget.ErrCreateBudget)
	}

	return b, nil
}

func (s *budgetService) GetBudgets(ctx context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, budget.ErrGetBudgets
	}

	budgets, err := repo.Budgets.GetBudgetsByUserID(ctx, userID)
	if err != nil {
		return nil, budget.ErrGetBudgets
	}

	return budgets, nil
}

func (s *budgetService) UpdateAllocation(ctx context.Context, userID string, id string, allocatedAmount float64) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := guard.Amount("allocated_amount", allocatedAmount); err != nil {
		return entity.Budget{}, err
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, budget.ErrUpdateBudget
	}

	b, err := guard.Owner(ctx, repo.Budgets.GetBudgetByID, id, userID, budget.ErrBudgetNotOwned)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Budget update rejected")
		return entity.Budget{}, guard.Classify(err, budget.ErrUpdateBudget)
	}

	if err := repo.Budgets.UpdateAllocation(ctx, id, allocatedAmount); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update budget allocation")
		return entity.Budget{}, guard.Classify(err, budget.ErrUpdateBudget)
	}

	b.AllocatedAmount = allocatedAmount
	return b, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return budget.ErrDeleteBudget
	}

	if _, err := guard.Owner(ctx, repo.Budgets.GetBudgetByID, id, userID, budget.ErrBudgetNotOwned); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Budget delete rejected")
		return guard.Classify(err, budget.ErrDeleteBudget)
	}

	if err := repo.Budgets.DeleteBudget(ctx, id); err != nil {
		return guard.Classify(err, budget.ErrDeleteBudget)
	}

	return nil
}

// DeleteBudgetByCategory is scoped to the caller, so it can only ever
// remove the caller's own budget.
func (s *budgetService) DeleteBudgetByCategory(ctx context.Context, userID string, category string) error {
	requestID := contextPkg.GetRequestID(ctx)

	category, err := guard.Category(category)
	if err != nil {
		return err
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return budget.ErrDeleteBudget
	}

	if err := repo.Budgets.DeleteBudgetByUserAndCategory(ctx, userID, category); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   category,
			"error":      err.Error(),
		}).Warn("Failed to delete budget by category")
		return guard.Classify(err, budget.ErrDeleteBudget)
	}

	return nil
}
