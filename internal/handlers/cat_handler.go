package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendbot/internal/services"
)

// CatHandler serves the /cat command: a random cat picture URL.
type CatHandler struct {
	catService services.CatImageServicer
}

// NewCatHandler creates a new CatHandler.
func NewCatHandler(catService services.CatImageServicer) *CatHandler {
	return &CatHandler{catService: catService}
}

// RandomCat fetches a random cat image URL
// @Summary     Random cat
// @Description URL of a random cat picture from the upstream image API
// @Tags        cat
// @Produce     json
// @Success     200 {object} CatImageResponse "Image URL"
// @Failure     502 {object} ErrorResponse "Upstream unavailable"
// @Router      /cat [get]
func (h *CatHandler) RandomCat(c *gin.Context) {
	url, err := h.catService.RandomImageURL(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, CatImageResponse{URL: url})
}
