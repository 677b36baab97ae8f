package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendbot/internal/logger"
	"spendbot/internal/models"
)

// Manager handles database access and schema bootstrap.
type Manager struct {
	db  *gorm.DB
	cfg *Config
}

// NewManager opens a connection using the configured driver.
func NewManager(cfg *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{DSN: cfg.DSN()})
	default:
		dialector = sqlite.Open(cfg.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, cfg: cfg}, nil
}

// Migrate creates the schema and seeds the category reference data. Safe to
// call on every start. Postgres deployments may instead use cmd/migrate with
// the SQL files under migrations/.
func (m *Manager) Migrate() error {
	if err := m.db.AutoMigrate(&models.User{}, &models.Category{}, &models.Record{}); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return SeedCategories(m.db)
}

// SeedCategories inserts any missing categories from the fixed seed list.
// Existing rows are left untouched, so the seed is idempotent.
func SeedCategories(db *gorm.DB) error {
	for _, c := range models.DefaultCategories() {
		category := c
		err := db.Where(models.Category{Name: category.Name}).
			FirstOrCreate(&category).Error
		if err != nil {
			return fmt.Errorf("seed category %s: %w", category.Name, err)
		}
	}
	logger.Get().Debugw("category reference data seeded", "count", len(models.DefaultCategories()))
	return nil
}

// DB returns the underlying GORM database instance.
func (m *Manager) DB() *gorm.DB {
	return m.db
}
