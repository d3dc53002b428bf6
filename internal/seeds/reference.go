package seeds

import (
	"log"

	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
)

// SeedReferenceData loads the fixed vocabularies: languages, CEFR levels,
// countries and a starter set of cities. All inserts are idempotent.
func SeedReferenceData() {
	seedLanguages()
	seedProficiencyLevels()
	seedCountries()
	seedCities()
}

func seedLanguages() {
	log.Println("🌍 Seeding Languages...")

	names := []string{
		"English", "Spanish", "French", "German", "Italian",
		"Portuguese", "Russian", "Chinese", "Japanese", "Korean",
		"Arabic", "Hindi", "Turkish", "Polish", "Dutch",
	}

	for _, name := range names {
		lang := models.Language{Name: name}
		if err := database.DB.FirstOrCreate(&lang, models.Language{Name: name}).Error; err != nil {
			log.Printf("   ❌ Failed to seed language %s: %v", name, err)
		}
	}
	log.Printf("   ✅ %d languages ensured", len(names))
}

func seedProficiencyLevels() {
	log.Println("📊 Seeding Proficiency Levels...")

	levels := []models.ProficiencyLevel{
		{Name: "A1", DisplayName: "Beginner"},
		{Name: "A2", DisplayName: "Elementary"},
		{Name: "B1", DisplayName: "Intermediate"},
		{Name: "B2", DisplayName: "Upper Intermediate"},
		{Name: "C1", DisplayName: "Advanced"},
		{Name: "C2", DisplayName: "Proficient"},
	}

	for _, level := range levels {
		if err := database.DB.FirstOrCreate(&level, models.ProficiencyLevel{Name: level.Name}).Error; err != nil {
			log.Printf("   ❌ Failed to seed level %s: %v", level.Name, err)
		}
	}
	log.Printf("   ✅ %d proficiency levels ensured", len(levels))
}

func seedCountries() {
	log.Println("🗺️ Seeding Countries...")

	names := []string{
		"United States", "United Kingdom", "Spain", "France", "Germany",
		"Italy", "Portugal", "Brazil", "Russia", "China",
		"Japan", "South Korea", "Egypt", "India", "Turkey",
		"Poland", "Netherlands", "Mexico", "Argentina", "Canada",
	}

	for _, name := range names {
		country := models.Country{Name: name}
		if err := database.DB.FirstOrCreate(&country, models.Country{Name: name}).Error; err != nil {
			log.Printf("   ❌ Failed to seed country %s: %v", name, err)
		}
	}
	log.Printf("   ✅ %d countries ensured", len(names))
}

func seedCities() {
	log.Println("🏙️ Seeding Cities...")

	cities := map[string][]string{
		"United States":  {"New York", "Los Angeles", "Chicago"},
		"United Kingdom": {"London", "Manchester", "Edinburgh"},
		"Spain":          {"Madrid", "Barcelona", "Valencia"},
		"France":         {"Paris", "Lyon", "Marseille"},
		"Germany":        {"Berlin", "Munich", "Hamburg"},
		"Italy":          {"Rome", "Milan", "Naples"},
		"Brazil":         {"São Paulo", "Rio de Janeiro"},
		"Russia":         {"Moscow", "Saint Petersburg"},
		"Japan":          {"Tokyo", "Osaka", "Kyoto"},
		"China":          {"Beijing", "Shanghai"},
	}

	count := 0
	for countryName, names := range cities {
		for _, name := range names {
			var existing models.City
			err := database.DB.
				Where("name = ? AND country_name = ?", name, countryName).
				First(&existing).Error
			if err == nil {
				continue
			}
			city := models.City{Name: name, CountryName: countryName}
			if err := database.DB.Create(&city).Error; err != nil {
				log.Printf("   ❌ Failed to seed city %s: %v", name, err)
				continue
			}
			count++
		}
	}
	log.Printf("   ✅ %d cities created", count)
}
