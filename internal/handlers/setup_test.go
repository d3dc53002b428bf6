package handlers

import (
	"fmt"
	"testing"

	"github.com/polyglotlabs/linguachat-backend/internal/config"
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing, keyed by test
// name so tests never see each other's rows.
func SetupTestDB(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

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
