package services

import (
	"fmt"
	"testing"

	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB initializes an in-memory SQLite DB for testing. The DSN is
// keyed by test name so parallel packages and reruns never see each other's
// rows.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	database.DB = db
	if err := database.DB.AutoMigrate(
		&models.Language{},
		&models.ProficiencyLevel{},
		&models.Country{},
		&models.City{},
		&models.User{},
		&models.TeachLanguage{},
		&models.LearnLanguage{},
		&models.Chat{},
		&models.ChatMember{},
		&models.Message{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
}

func seedVocabulary(t *testing.T) {
	t.Helper()
	for _, name := range []string{"English", "Spanish", "French", "German", "Japanese"} {
		database.DB.Create(&models.Language{Name: name})
	}
	levels := []models.ProficiencyLevel{
		{Name: "A1", DisplayName: "Beginner"},
		{Name: "A2", DisplayName: "Elementary"},
		{Name: "B1", DisplayName: "Intermediate"},
		{Name: "B2", DisplayName: "Upper Intermediate"},
		{Name: "C1", DisplayName: "Advanced"},
		{Name: "C2", DisplayName: "Proficient"},
	}
	for _, level := range levels {
		database.DB.Create(&level)
	}
}

func createTestUser(t *testing.T, nickname string) models.User {
	t.Helper()
	user := models.User{
		Nickname: nickname,
		Login:    nickname,
		Email:    nickname + "@example.com",
		Password: "hashed",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", nickname, err)
	}
	return user
}

func teaches(userID, language, level string) {
	database.DB.Create(&models.TeachLanguage{UserID: userID, LanguageName: language, Proficiency: level})
}

func learns(userID, language, level string) {
	database.DB.Create(&models.LearnLanguage{UserID: userID, LanguageName: language, Proficiency: level})
}

func cityIn(t *testing.T, name, country string) models.City {
	t.Helper()
	database.DB.FirstOrCreate(&models.Country{Name: country}, models.Country{Name: country})
	city := models.City{Name: name, CountryName: country}
	if err := database.DB.Create(&city).Error; err != nil {
		t.Fatalf("failed to create city %s: %v", name, err)
	}
	return city
}
