package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/guard"
	contextPkg "FinanceTracker/pkg/context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateCategory(ctx context.Context, userID string, req transaction.CreateCategoryRequest) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return entity.Category{}, guard.NewValidationError("name", "name is required")
	}

	color := req.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, transaction.ErrCreateCategory
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Category{}, transaction.ErrCreateCategory
	}

	category := entity.Category{
		ID:        ULID,
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: now(),
	}

	if err := repo.Categories.CreateCategory(ctx, category); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"error":      err.Error(),
		}).Warn("Failed to create category")
		return entity.Category{}, guard.Classify(err, transaction.ErrCreateCategory)
	}

	return category, nil
}

func (s *transactionService) GetCategories(ctx context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, transaction.ErrGetCategories
	}

	categories, err := repo.Categories.GetCategoriesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, transaction.ErrGetCategories
	}

	return categories, nil
}
