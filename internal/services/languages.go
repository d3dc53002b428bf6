package services

import (
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	apperrors "github.com/polyglotlabs/linguachat-backend/pkg/errors"
)

// Teach/learn set mutations. Every write re-validates the disjointness
// invariant: a language may sit in a user's teach set or learn set, never
// both.

func validateVocabulary(languageName, levelName string) error {
	if err := database.DB.First(&models.Language{}, "name = ?", languageName).Error; err != nil {
		return apperrors.NotFound("Language not found: " + languageName)
	}
	if err := database.DB.First(&models.ProficiencyLevel{}, "name = ?", levelName).Error; err != nil {
		return apperrors.NotFound("Proficiency level not found: " + levelName)
	}
	return nil
}

func inTeachSet(userID, languageName string) bool {
	var n int64
	database.DB.Model(&models.TeachLanguage{}).
		Where("user_id = ? AND language_name = ?", userID, languageName).
		Count(&n)
	return n > 0
}

func inLearnSet(userID, languageName string) bool {
	var n int64
	database.DB.Model(&models.LearnLanguage{}).
		Where("user_id = ? AND language_name = ?", userID, languageName).
		Count(&n)
	return n > 0
}

func AddLearnLanguage(userID, languageName, levelName string) error {
	if err := validateVocabulary(languageName, levelName); err != nil {
		return err
	}
	if inLearnSet(userID, languageName) {
		return apperrors.Conflict("Language " + languageName + " is already in your learn set")
	}
	if inTeachSet(userID, languageName) {
		return apperrors.Conflict("Language " + languageName + " is already in your teach set")
	}
	entry := models.LearnLanguage{UserID: userID, LanguageName: languageName, Proficiency: levelName}
	if err := database.DB.Create(&entry).Error; err != nil {
		return apperrors.Internal("Failed to add language")
	}
	return nil
}

func AddTeachLanguage(userID, languageName, levelName string) error {
	if err := validateVocabulary(languageName, levelName); err != nil {
		return err
	}
	if inTeachSet(userID, languageName) {
		return apperrors.Conflict("Language " + languageName + " is already in your teach set")
	}
	if inLearnSet(userID, languageName) {
		return apperrors.Conflict("Language " + languageName + " is already in your learn set")
	}
	entry := models.TeachLanguage{UserID: userID, LanguageName: languageName, Proficiency: levelName}
	if err := database.DB.Create(&entry).Error; err != nil {
		return apperrors.Internal("Failed to add language")
	}
	return nil
}

func UpdateLearnLanguage(userID, languageName, levelName string) error {
	if err := validateVocabulary(languageName, levelName); err != nil {
		return err
	}
	result := database.DB.Model(&models.LearnLanguage{}).
		Where("user_id = ? AND language_name = ?", userID, languageName).
		Update("proficiency", levelName)
	if result.Error != nil {
		return apperrors.Internal("Failed to update language")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Language " + languageName + " is not in your learn set")
	}
	return nil
}

func UpdateTeachLanguage(userID, languageName, levelName string) error {
	if err := validateVocabulary(languageName, levelName); err != nil {
		return err
	}
	result := database.DB.Model(&models.TeachLanguage{}).
		Where("user_id = ? AND language_name = ?", userID, languageName).
		Update("proficiency", levelName)
	if result.Error != nil {
		return apperrors.Internal("Failed to update language")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Language " + languageName + " is not in your teach set")
	}
	return nil
}

func RemoveLearnLanguage(userID, languageName string) error {
	err := database.DB.
		Where("user_id = ? AND language_name = ?", userID, languageName).
		Delete(&models.LearnLanguage{}).Error
	if err != nil {
		return apperrors.Internal("Failed to remove language")
	}
	return nil
}

func RemoveTeachLanguage(userID, languageName string) error {
	err := database.DB.
		Where("user_id = ? AND language_name = ?", userID, languageName).
		Delete(&models.TeachLanguage{}).Error
	if err != nil {
		return apperrors.Internal("Failed to remove language")
	}
	return nil
}

func ListLearnLanguages(userID string) ([]models.LearnLanguage, error) {
	entries := []models.LearnLanguage{}
	if err := database.DB.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, apperrors.Internal("Failed to list languages")
	}
	return entries, nil
}

func ListTeachLanguages(userID string) ([]models.TeachLanguage, error) {
	entries := []models.TeachLanguage{}
	if err := database.DB.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, apperrors.Internal("Failed to list languages")
	}
	return entries, nil
}

// SetTranslationLanguage updates the target language for the translate
// feature.
func SetTranslationLanguage(userID, code string) error {
	if code == "" {
		return apperrors.BadRequest("Translation language code cannot be empty")
	}
	result := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("translation_language", code)
	if result.Error != nil {
		return apperrors.Internal("Failed to update translation language")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}
