package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendbot/internal/errors"
	"spendbot/internal/logger"
	"spendbot/internal/models"
)

// userService handles the user registry.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// EnsureUser returns the user for handle, creating it on first use. Runs on
// the caller's transaction so that user creation and the record insert commit
// or roll back together. A unique-constraint failure from a concurrent write
// for the same handle is retried as a lookup instead of surfacing.
func (s *userService) EnsureUser(tx *gorm.DB, handle string) (*models.User, error) {
	if handle == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user handle is required")
	}

	var user models.User
	err := tx.Where("name = ?", handle).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user = models.User{Name: handle}
	if createErr := tx.Create(&user).Error; createErr != nil {
		if lookupErr := tx.Where("name = ?", handle).First(&user).Error; lookupErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, createErr)
		}
	} else {
		logger.Get().Debugw("created user", "handle", handle, "user_id", user.ID)
	}
	return &user, nil
}

// GetUserByName looks up an existing user by handle.
func (s *userService) GetUserByName(handle string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ?", handle).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
