package services

import (
	"gorm.io/gorm"

	apperrors "spendbot/internal/errors"
	"spendbot/internal/models"
	"spendbot/internal/period"
)

// statsService handles the read path: per-category aggregation over a closed
// date interval.
type statsService struct {
	db    *gorm.DB
	users UserServicer
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB, users UserServicer) StatsServicer {
	return &statsService{db: db, users: users}
}

// GetStatistics aggregates the user's records whose creation date falls
// within [p.Start, p.End]. Rows are ordered by total DESC with category id
// ASC as the deterministic tie-break; the top category is taken from the
// first row of the same query so both paths always agree.
func (s *statsService) GetStatistics(username string, p period.Period) (*Statistics, error) {
	user, err := s.users.GetUserByName(username)
	if err != nil {
		return nil, err
	}

	var rows []CategoryTotal
	err = s.db.Model(&models.Record{}).
		Select("records.category_id AS category_id, "+
			"categories.name AS category, "+
			"SUM(records.amount) AS total_amount, "+
			"COUNT(records.id) AS transactions_count").
		Joins("JOIN categories ON categories.id = records.category_id").
		Where("records.user_id = ?", user.ID).
		Where("date(records.created_at) BETWEEN ? AND ?", p.StartSQL(), p.EndSQL()).
		Group("records.category_id, categories.name").
		Order("total_amount DESC, category_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := &Statistics{
		Period: p,
		Rows:   rows,
		Totals: StatsTotals{TopCategory: NoDataCategory},
	}
	for _, row := range rows {
		stats.Totals.TotalAmount += row.TotalAmount
	}
	if len(rows) > 0 {
		stats.Totals.TopCategory = rows[0].Category
	}
	return stats, nil
}
