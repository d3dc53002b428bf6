package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/polyglotlabs/linguachat-backend/internal/services"
)

// GetProfile returns the acting user's profile with both language sets.
func GetProfile(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var user models.User
	if err := database.DB.Preload("City").First(&user, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	learn, err := services.ListLearnLanguages(userId)
	if err != nil {
		respondError(c, err)
		return
	}
	teach, err := services.ListTeachLanguages(userId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":             user,
		"languagesToLearn": learn,
		"languagesToTeach": teach,
	})
}

type languageInput struct {
	Language         string `json:"language" binding:"required"`
	ProficiencyLevel string `json:"proficiencyLevel" binding:"required"`
}

type languageNameInput struct {
	Language string `json:"language" binding:"required"`
}

func AddLanguageToLearn(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	var input languageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.AddLearnLanguage(userId, input.Language, input.ProficiencyLevel); err != nil {
		respondError(c, err)
		return
	}
	learn, _ := services.ListLearnLanguages(userId)
	c.JSON(http.StatusOK, gin.H{"languagesToLearn": learn})
}

func AddLanguageToTeach(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	var input languageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.AddTeachLanguage(userId, input.Language, input.ProficiencyLevel); err != nil {
		respondError(c, err)
		return
	}
	teach, _ := services.ListTeachLanguages(userId)
	c.JSON(http.StatusOK, gin.H{"languagesToTeach": teach})
}

func UpdateLanguageToLearn(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	var input languageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.UpdateLearnLanguage(userId, input.Language, input.ProficiencyLevel); err != nil {
		respondError(c, err)
		return
	}
	learn, _ := services.ListLearnLanguages(userId)
	c.JSON(http.StatusOK, gin.H{"languagesToLearn": learn})
}

func UpdateLanguageToTeach(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	var input languageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.UpdateTeachLanguage(userId, input.Language, input.ProficiencyLevel); err != nil {
		respondError(c, err)
		return
	}
	teach, _ := services.ListTeachLanguages(userId)
	c.JSON(http.StatusOK, gin.H{"languagesToTeach": teach})
}

func DeleteLanguageToLearn(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	var input languageNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.RemoveLearnLanguage(userId, input.Language); err != nil {
		respondError(c, err)
		return
	}
	learn, _ := services.ListLearnLanguages(userId)
	c.JSON(http.StatusOK, gin.H{"languagesToLearn": learn})
}

func DeleteLanguageToTeach(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	var input languageNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.RemoveTeachLanguage(userId, input.Language); err != nil {
		respondError(c, err)
		return
	}
	teach, _ := services.ListTeachLanguages(userId)
	c.JSON(http.StatusOK, gin.H{"languagesToTeach": teach})
}

func UpdateTranslationLanguage(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	var input struct {
		TranslationLanguage string `json:"translationLanguage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.SetTranslationLanguage(userId, input.TranslationLanguage); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentTranslationLanguage": input.TranslationLanguage})
}

// GetUserPublicKey hands out any user's public key so a chat partner can wrap
// AES keys for them.
func GetUserPublicKey(c *gin.Context) {
	userId := c.Param("userId")

	var user models.User
	if err := database.DB.Select("public_key").First(&user, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicKey": user.PublicKey})
}

// GetMyKeys returns the acting user's own key pair. This is the only endpoint
// that ever exposes the private key.
func GetMyKeys(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var user models.User
	if err := database.DB.Select("public_key, private_key").First(&user, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"publicKey":  user.PublicKey,
		"privateKey": user.PrivateKey,
	})
}
