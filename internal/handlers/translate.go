package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/polyglotlabs/linguachat-backend/internal/services"
)

// TranslateText proxies plain text to the translation upstream, targeting the
// acting user's configured translation language.
func TranslateText(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Select("translation_language").First(&user, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	result, err := services.TranslateText(input.Text, user.TranslationLanguage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
