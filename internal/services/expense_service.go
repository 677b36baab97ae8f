package services

import (
	"errors"

	"gorm.io/gorm"

	"spendbot/internal/categorizer"
	apperrors "spendbot/internal/errors"
	"spendbot/internal/logger"
	"spendbot/internal/models"
	"spendbot/internal/pagination"
	"spendbot/internal/parser"
)

// expenseService handles the write path: raw text in, persisted record out.
type expenseService struct {
	db          *gorm.DB
	users       UserServicer
	categorizer *categorizer.Categorizer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, users UserServicer, c *categorizer.Categorizer) ExpenseServicer {
	return &expenseService{db: db, users: users, categorizer: c}
}

// RecordExpense parses and classifies the raw text and appends one record.
// User creation and the record insert share one transaction: if the insert
// fails after a fresh user row was created, the whole write rolls back.
//
// Amounts of zero (no numeric token) and the placeholder description (no
// textual token) are stored as-is; the chat transport decides what to tell
// the user about degraded entries.
func (s *expenseService) RecordExpense(username, rawText string) (*models.Record, error) {
	if username == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}

	description, amount := parser.Parse(rawText)
	label := s.categorizer.Categorize(description)

	var record *models.Record
	err := s.db.Transaction(func(tx *gorm.DB) error {
		category, err := s.resolveCategory(tx, label)
		if err != nil {
			return err
		}

		user, err := s.users.EnsureUser(tx, username)
		if err != nil {
			return err
		}

		record = &models.Record{
			Title:      description,
			Amount:     amount,
			UserID:     user.ID,
			CategoryID: category.ID,
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		record.Category = *category
		return nil
	})
	if err != nil {
		logger.Get().Errorw("expense write failed",
			"username", username,
			"error", err.Error(),
		)
		return nil, err
	}

	logger.Get().Debugw("expense recorded",
		"username", username,
		"title", record.Title,
		"amount", record.Amount,
		"category", label,
	)
	return record, nil
}

// resolveCategory maps a rule label to a category row. A label missing from
// the reference table is recovered by falling back to the `other` category;
// only a missing `other` row fails the write.
func (s *expenseService) resolveCategory(tx *gorm.DB, label string) (*models.Category, error) {
	var category models.Category
	err := tx.Where("name = ?", label).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Warnw("category label not in reference table, falling back",
		"label", label,
		"fallback", models.CategoryOther,
	)
	if err := tx.Where("name = ?", models.CategoryOther).First(&category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCategoryNotFound, err)
	}
	return &category, nil
}

// GetUserRecords lists a user's records, newest first.
func (s *expenseService) GetUserRecords(username string, page pagination.PageRequest) (*pagination.PageResponse[models.Record], error) {
	user, err := s.users.GetUserByName(username)
	if err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Record{}).Where("user_id = ?", user.ID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.Record
	if err := base.Preload("Category").
		Scopes(pagination.Paginate(page)).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}
