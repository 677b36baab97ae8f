package services

import (
	"context"

	"gorm.io/gorm"

	"spendbot/internal/models"
	"spendbot/internal/pagination"
	"spendbot/internal/period"
)

// UserServicer defines the contract for user registry logic.
type UserServicer interface {
	// EnsureUser returns the user for handle, creating it on first use.
	// Idempotent and safe under concurrent writes for the same handle.
	EnsureUser(tx *gorm.DB, handle string) (*models.User, error)
	GetUserByName(handle string) (*models.User, error)
}

// ExpenseServicer defines the contract for the write path: parse the raw chat
// text, classify it, and persist the record.
type ExpenseServicer interface {
	RecordExpense(username, rawText string) (*models.Record, error)
	GetUserRecords(username string, page pagination.PageRequest) (*pagination.PageResponse[models.Record], error)
}

// CategoryTotal is one aggregated row: the spend in a single category over
// the requested period.
type CategoryTotal struct {
	CategoryID        uint   `json:"category_id"`
	Category          string `json:"category"`
	TotalAmount       int64  `json:"total_amount"`
	TransactionsCount int64  `json:"transactions_count"`
}

// NoDataCategory is the top-category sentinel when the period holds no records.
const NoDataCategory = "Нет данных"

// StatsTotals summarizes a period across all categories.
type StatsTotals struct {
	TotalAmount int64  `json:"total_amount"`
	TopCategory string `json:"top_category"`
}

// Statistics is the aggregation result for one (user, period) query.
type Statistics struct {
	Period period.Period   `json:"-"`
	Rows   []CategoryTotal `json:"rows"`
	Totals StatsTotals     `json:"totals"`
}

// StatsServicer defines the contract for the read path.
type StatsServicer interface {
	// GetStatistics aggregates a user's records over the closed interval p.
	// An unknown handle yields ErrUserNotFound, distinct from a known user
	// with zero matching records.
	GetStatistics(username string, p period.Period) (*Statistics, error)
}

// CategoryServicer exposes the seeded category reference data.
type CategoryServicer interface {
	ListCategories() ([]models.Category, error)
}

// CatImageServicer fetches a random cat picture URL for the /cat command.
type CatImageServicer interface {
	RandomImageURL(ctx context.Context) (string, error)
}
