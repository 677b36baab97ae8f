package handlers

import (
	"time"

	"spendbot/internal/models"
	"spendbot/internal/services"
)

// ErrorResponse is the error envelope produced by the error middleware.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MessageResponse is a simple confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// RecordResponse is one expense record as returned by the write path.
type RecordResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Amount    int64     `json:"amount"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func newRecordResponse(record *models.Record, category string) RecordResponse {
	return RecordResponse{
		ID:        record.ID,
		Title:     record.Title,
		Amount:    record.Amount,
		Category:  category,
		CreatedAt: record.CreatedAt,
	}
}

// StatisticsResponse carries both the structured aggregation and the
// ready-to-send report text.
type StatisticsResponse struct {
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Rows      []services.CategoryTotal `json:"rows"`
	Totals    services.StatsTotals     `json:"totals"`
	Report    string                   `json:"report"`
}

// CatImageResponse holds the random cat picture URL.
type CatImageResponse struct {
	URL string `json:"url"`
}
