package services

import (
	"strings"

	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	apperrors "github.com/polyglotlabs/linguachat-backend/pkg/errors"
	"gorm.io/gorm"
)

// CountryAny disables the location filter when passed (case-insensitively)
// as the country argument of FindMatches.
const CountryAny = "Any"

// FindMatches returns users who teach languageName at exactly levelName and
// are a viable exchange partner for the requester:
//
//  1. the requester must currently be learning languageName (any level);
//  2. the candidate must not be the requester;
//  3. mutual interest: the candidate must be learning at least one language
//     the requester teaches, at any level;
//  4. unless country is "Any", the candidate's city must be in that country.
//
// The reciprocal check is deliberately looser than the forward one (no
// proficiency match required) to keep teacher pools wide. Read-only; result
// order is unspecified.
func FindMatches(requesterID, languageName, levelName, country string) ([]models.User, error) {
	db := database.DB

	if err := db.First(&models.Language{}, "name = ?", languageName).Error; err != nil {
		return nil, apperrors.NotFound("Language not found: " + languageName)
	}
	if err := db.First(&models.ProficiencyLevel{}, "name = ?", levelName).Error; err != nil {
		return nil, apperrors.NotFound("Proficiency level not found: " + levelName)
	}

	var learning int64
	db.Model(&models.LearnLanguage{}).
		Where("user_id = ? AND language_name = ?", requesterID, languageName).
		Count(&learning)
	if learning == 0 {
		return nil, apperrors.PreconditionFailed("You do not have " + languageName + " in your languages to learn")
	}

	var teacherLangs []string
	db.Model(&models.TeachLanguage{}).
		Where("user_id = ?", requesterID).
		Pluck("language_name", &teacherLangs)

	matches := []models.User{}
	// Without a teach set the mutual-interest condition can never hold.
	if len(teacherLangs) == 0 {
		return matches, nil
	}

	var teachers []models.TeachLanguage
	if err := db.Where("language_name = ? AND proficiency = ?", languageName, levelName).
		Find(&teachers).Error; err != nil {
		return nil, apperrors.Internal("Failed to query teachers")
	}

	anyCountry := strings.EqualFold(country, CountryAny)

	for _, teacher := range teachers {
		if teacher.UserID == requesterID {
			continue
		}

		var overlap int64
		db.Model(&models.LearnLanguage{}).
			Where("user_id = ? AND language_name IN ?", teacher.UserID, teacherLangs).
			Count(&overlap)
		if overlap == 0 {
			continue
		}

		var candidate models.User
		if err := db.Preload("City").First(&candidate, "id = ?", teacher.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, apperrors.Internal("Failed to load candidate")
		}

		if !anyCountry {
			if candidate.City == nil || candidate.City.CountryName != country {
				continue
			}
		}

		matches = append(matches, candidate)
	}

	return matches, nil
}
