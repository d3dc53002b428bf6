package seeds

import (
	"log"
	"time"

	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/polyglotlabs/linguachat-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type demoUser struct {
	Nickname string
	Email    string
	Teach    map[string]string // language -> level
	Learn    map[string]string
	City     string
	Country  string
}

// SeedDemoUsers creates a handful of accounts that already form matching
// pairs, so a fresh environment has something to search against.
func SeedDemoUsers() {
	log.Println("👤 Seeding Demo Users...")

	demos := []demoUser{
		{
			Nickname: "alice",
			Email:    "alice@example.com",
			Teach:    map[string]string{"English": "C2"},
			Learn:    map[string]string{"Spanish": "A2"},
			City:     "London",
			Country:  "United Kingdom",
		},
		{
			Nickname: "bruno",
			Email:    "bruno@example.com",
			Teach:    map[string]string{"Spanish": "C2", "Portuguese": "C1"},
			Learn:    map[string]string{"English": "B1"},
			City:     "Madrid",
			Country:  "Spain",
		},
		{
			Nickname: "chloe",
			Email:    "chloe@example.com",
			Teach:    map[string]string{"French": "C2"},
			Learn:    map[string]string{"Japanese": "A1", "English": "B2"},
			City:     "Paris",
			Country:  "France",
		},
		{
			Nickname: "daiki",
			Email:    "daiki@example.com",
			Teach:    map[string]string{"Japanese": "C2"},
			Learn:    map[string]string{"French": "A2"},
			City:     "Tokyo",
			Country:  "Japan",
		},
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	for _, d := range demos {
		var existing models.User
		if err := database.DB.Where("nickname = ?", d.Nickname).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ User %s already exists", d.Nickname)
			continue
		}

		publicKey, privateKey, err := utils.GenerateKeyPair()
		if err != nil {
			log.Printf("   ❌ Failed to generate keys for %s: %v", d.Nickname, err)
			continue
		}

		user := models.User{
			Nickname:         d.Nickname,
			Login:            d.Nickname,
			Email:            d.Email,
			Password:         string(hash),
			RegistrationDate: time.Now().UTC(),
			PublicKey:        publicKey,
			PrivateKey:       privateKey,
		}

		var city models.City
		if err := database.DB.
			Where("name = ? AND country_name = ?", d.City, d.Country).
			First(&city).Error; err == nil {
			user.CityID = &city.ID
		}

		if err := database.DB.Create(&user).Error; err != nil {
			log.Printf("   ❌ Failed to create user %s: %v", d.Nickname, err)
			continue
		}

		for lang, level := range d.Teach {
			database.DB.Create(&models.TeachLanguage{
				UserID:       user.ID,
				LanguageName: lang,
				Proficiency:  level,
			})
		}
		for lang, level := range d.Learn {
			database.DB.Create(&models.LearnLanguage{
				UserID:       user.ID,
				LanguageName: lang,
				Proficiency:  level,
			})
		}

		log.Printf("   👤 User Created: %s (%s)", d.Nickname, user.ID)
	}
}
