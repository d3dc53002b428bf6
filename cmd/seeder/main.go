package main

import (
	"log"

	"github.com/polyglotlabs/linguachat-backend/internal/config"
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/polyglotlabs/linguachat-backend/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()
	database.InitRedis()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
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
	)

	seeds.SeedReferenceData()
	seeds.SeedDemoUsers()

	// Reference responses are cached; drop stale entries after reseeding
	if err := database.CacheInvalidate("ref:*"); err != nil {
		log.Printf("⚠️ Failed to invalidate reference cache: %v", err)
	}

	log.Println("✅ Seeding Complete!")
}
