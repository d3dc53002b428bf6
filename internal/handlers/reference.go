package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/polyglotlabs/linguachat-backend/internal/services"
)

// Reference vocabulary endpoints. The lists change only when re-seeded, so
// responses sit in Redis for an hour.

const referenceCacheTTL = time.Hour

func GetLanguages(c *gin.Context) {
	var languages []models.Language
	if err := database.CacheGet("ref:languages", &languages); err != nil {
		if err := database.DB.Order("name").Find(&languages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch languages"})
			return
		}
		database.CacheSet("ref:languages", languages, referenceCacheTTL)
	}
	c.JSON(http.StatusOK, gin.H{"languages": languages})
}

func GetProficiencyLevels(c *gin.Context) {
	var levels []models.ProficiencyLevel
	if err := database.CacheGet("ref:levels", &levels); err != nil {
		if err := database.DB.Order("name").Find(&levels).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch proficiency levels"})
			return
		}
		database.CacheSet("ref:levels", levels, referenceCacheTTL)
	}
	c.JSON(http.StatusOK, gin.H{"proficiencyLevels": levels})
}

func GetCountries(c *gin.Context) {
	var countries []models.Country
	if err := database.CacheGet("ref:countries", &countries); err != nil {
		if err := database.DB.Order("name").Find(&countries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch countries"})
			return
		}
		database.CacheSet("ref:countries", countries, referenceCacheTTL)
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

func GetCities(c *gin.Context) {
	country := c.Query("country")

	var cities []models.City
	query := database.DB.Order("name")
	if country != "" {
		query = query.Where("country_name = ?", country)
	}
	if err := query.Find(&cities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func GetTranslationLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": services.AvailableTranslationLanguages()})
}
