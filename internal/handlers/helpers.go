package handlers

import "github.com/gin-gonic/gin"

// handleError hands the error to the error middleware, which renders the
// JSON response and logs internals.
func handleError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
