package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"spendbot/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique handle.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithName creates a user with the given handle.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{Name: name}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CategoryID looks up a seeded category id by label.
func CategoryID(t *testing.T, db *gorm.DB, label string) uint {
	t.Helper()

	var category models.Category
	if err := db.Where("name = ?", label).First(&category).Error; err != nil {
		t.Fatalf("failed to look up category %s: %v", label, err)
	}
	return category.ID
}

// CreateTestRecord creates an expense record with the given timestamp.
func CreateTestRecord(t *testing.T, db *gorm.DB, userID, categoryID uint, amount int64, createdAt time.Time) *models.Record {
	t.Helper()

	record := &models.Record{
		Title:      fmt.Sprintf("Test Record %d", nextID()),
		Amount:     amount,
		UserID:     userID,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
	return record
}
