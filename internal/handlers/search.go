package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/services"
)

type SearchInput struct {
	Language         string `json:"language" binding:"required"`
	ProficiencyLevel string `json:"proficiencyLevel" binding:"required"`
	Country          string `json:"country"`
}

// SearchPartners runs the compatibility matcher for the acting user.
func SearchPartners(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var input SearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Country == "" {
		input.Country = services.CountryAny
	}

	users, err := services.FindMatches(userId, input.Language, input.ProficiencyLevel, input.Country)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
