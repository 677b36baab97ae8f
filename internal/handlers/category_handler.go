package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendbot/internal/services"
)

// CategoryHandler serves the category reference data.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories returns the seeded category table
// @Summary     List categories
// @Description The fixed category reference data, in id order
// @Tags        categories
// @Produce     json
// @Success     200 {array} models.Category "Categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
