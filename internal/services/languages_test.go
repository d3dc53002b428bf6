package services

import (
	"net/http"
	"testing"

	apperrors "github.com/polyglotlabs/linguachat-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAddLanguages_Disjointness(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")

	assert.NoError(t, AddLearnLanguage(alice.ID, "Spanish", "A2"))
	assert.NoError(t, AddTeachLanguage(alice.ID, "English", "C2"))

	// Duplicates within a set
	err := AddLearnLanguage(alice.ID, "Spanish", "B1")
	assert.True(t, apperrors.IsCode(err, http.StatusConflict))

	// A language can never be in both sets
	err = AddTeachLanguage(alice.ID, "Spanish", "C1")
	assert.True(t, apperrors.IsCode(err, http.StatusConflict))
	err = AddLearnLanguage(alice.ID, "English", "A1")
	assert.True(t, apperrors.IsCode(err, http.StatusConflict))
}

func TestAddLanguage_UnknownVocabulary(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")

	err := AddLearnLanguage(alice.ID, "Klingon", "A1")
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))

	err = AddTeachLanguage(alice.ID, "Spanish", "Z9")
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))
}

func TestUpdateLanguage(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	assert.NoError(t, AddLearnLanguage(alice.ID, "Spanish", "A2"))

	assert.NoError(t, UpdateLearnLanguage(alice.ID, "Spanish", "B1"))

	entries, err := ListLearnLanguages(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "B1", entries[0].Proficiency)

	// Updating an absent entry is NotFound, not an upsert
	err = UpdateLearnLanguage(alice.ID, "French", "A1")
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))
	err = UpdateTeachLanguage(alice.ID, "Spanish", "B2")
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))
}

func TestRemoveLanguage(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	assert.NoError(t, AddTeachLanguage(alice.ID, "English", "C2"))

	assert.NoError(t, RemoveTeachLanguage(alice.ID, "English"))

	entries, err := ListTeachLanguages(alice.ID)
	assert.NoError(t, err)
	assert.Empty(t, entries)

	// After removal the language is free to join the other set
	assert.NoError(t, AddLearnLanguage(alice.ID, "English", "B2"))
}

func TestSetTranslationLanguage(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")

	assert.NoError(t, SetTranslationLanguage(alice.ID, "fr"))

	err := SetTranslationLanguage(alice.ID, "")
	assert.True(t, apperrors.IsCode(err, http.StatusBadRequest))

	err = SetTranslationLanguage("no-such-user", "fr")
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))
}
