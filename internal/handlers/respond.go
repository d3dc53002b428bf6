package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/pkg/errors"
)

// respondError maps service errors onto HTTP responses. AppErrors carry
// their own status; anything else is a 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
