package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendbot/internal/errors"
	"spendbot/internal/period"
	"spendbot/internal/report"
	"spendbot/internal/services"
)

// StatsHandler handles statistics requests.
type StatsHandler struct {
	statsService services.StatsServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsServicer) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// StatisticsRequest holds the query parameters for a statistics request.
// Either a named preset range or an explicit dd.mm.yyyy date pair.
type StatisticsRequest struct {
	Username  string `form:"username" binding:"required,handle"`
	Range     string `form:"range" binding:"omitempty,oneof=today week month"`
	StartDate string `form:"start_date" binding:"omitempty,dmydate"`
	EndDate   string `form:"end_date" binding:"omitempty,dmydate"`
}

// resolvePeriod turns the request into a concrete interval. A preset range
// wins over explicit dates.
func resolvePeriod(req StatisticsRequest) (period.Period, error) {
	if req.Range != "" {
		now := time.Now()
		switch req.Range {
		case "today":
			return period.Day(now), nil
		case "week":
			return period.Week(now), nil
		default:
			return period.Month(now), nil
		}
	}
	if req.StartDate == "" || req.EndDate == "" {
		return period.Period{}, fmt.Errorf("start_date and end_date (dd.mm.yyyy) are required without a preset range")
	}
	return period.Parse(req.StartDate, req.EndDate)
}

// GetStatistics aggregates and formats a user's spending over a period
// @Summary     Spending statistics
// @Description Per-category totals and a formatted report over a closed date interval
// @Tags        statistics
// @Produce     json
// @Param       username   query string true  "User handle"
// @Param       range      query string false "Preset range (today, week, month)"
// @Param       start_date query string false "Start date (dd.mm.yyyy)"
// @Param       end_date   query string false "End date (dd.mm.yyyy)"
// @Success     200 {object} StatisticsResponse "Aggregated statistics"
// @Failure     400 {object} ErrorResponse "Malformed range"
// @Failure     404 {object} ErrorResponse "Unknown user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /statistics [get]
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	var req StatisticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleError(c, apperrors.WithMessage(apperrors.ErrInvalidPeriod,
			"username and a preset range or start_date/end_date (dd.mm.yyyy) are required"))
		return
	}

	p, err := resolvePeriod(req)
	if err != nil {
		handleError(c, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error()))
		return
	}

	stats, err := h.statsService.GetStatistics(req.Username, p)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatisticsResponse{
		StartDate: p.Start.Format(period.DateLayout),
		EndDate:   p.End.Format(period.DateLayout),
		Rows:      stats.Rows,
		Totals:    stats.Totals,
		Report:    report.Format(p, stats),
	})
}
