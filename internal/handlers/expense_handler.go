package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendbot/internal/errors"
	"spendbot/internal/pagination"
	"spendbot/internal/services"
)

// ExpenseHandler handles expense write and listing requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest is the inbound write request from the chat transport.
type CreateExpenseRequest struct {
	Username string `json:"username" binding:"required,handle"`
	Text     string `json:"text" binding:"required"`
}

// ListRecordsRequest holds the query parameters for the record listing.
type ListRecordsRequest struct {
	Username string `form:"username" binding:"required,handle"`
	pagination.PageRequest
}

// CreateExpense records one free-text expense entry
// @Summary     Record an expense
// @Description Parse a free-text entry like "мясо 1500", classify it and persist it for the user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense entry"
// @Success     201 {object} RecordResponse "Recorded expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"username and text are required"))
		return
	}

	record, err := h.expenseService.RecordExpense(req.Username, req.Text)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"record": newRecordResponse(record, record.Category.Name)})
}

// GetUserRecords lists a user's expense records
// @Summary     List records
// @Description Paginated list of a user's expense records, newest first
// @Tags        expenses
// @Produce     json
// @Param       username  query string true  "User handle"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Record] "Records page"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Unknown user"
// @Router      /records [get]
func (h *ExpenseHandler) GetUserRecords(c *gin.Context) {
	var req ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required"))
		return
	}

	result, err := h.expenseService.GetUserRecords(req.Username, req.PageRequest)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
