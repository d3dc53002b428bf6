package services

import (
	"net/http"
	"testing"

	"github.com/polyglotlabs/linguachat-backend/internal/database"
	apperrors "github.com/polyglotlabs/linguachat-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFindMatches_MutualInterest(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	teaches(alice.ID, "English", "C2")
	learns(alice.ID, "Spanish", "A2")

	bruno := createTestUser(t, "bruno")
	teaches(bruno.ID, "Spanish", "C2")
	learns(bruno.ID, "English", "B1")

	matches, err := FindMatches(alice.ID, "Spanish", "C2", CountryAny)

	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, bruno.ID, matches[0].ID)
}

func TestFindMatches_NoMutualInterest(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	teaches(alice.ID, "English", "C2")
	learns(alice.ID, "Spanish", "A2")

	// Teaches the right language at the right level, but wants French,
	// which alice does not teach.
	carla := createTestUser(t, "carla")
	teaches(carla.ID, "Spanish", "C2")
	learns(carla.ID, "French", "A1")

	matches, err := FindMatches(alice.ID, "Spanish", "C2", CountryAny)

	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatches_ExactLevelOnly(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	teaches(alice.ID, "English", "C2")
	learns(alice.ID, "Spanish", "A2")

	// C1 is not C2, even though it is "close enough" for a human.
	diego := createTestUser(t, "diego")
	teaches(diego.ID, "Spanish", "C1")
	learns(diego.ID, "English", "B1")

	matches, err := FindMatches(alice.ID, "Spanish", "C2", CountryAny)

	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatches_ExcludesRequester(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	teaches(alice.ID, "English", "C2")
	learns(alice.ID, "Spanish", "A2")
	// Rows inserted directly, bypassing the disjointness guard, to make the
	// requester show up in the teacher query.
	teaches(alice.ID, "Spanish", "C2")
	learns(alice.ID, "English", "A1")

	matches, err := FindMatches(alice.ID, "Spanish", "C2", CountryAny)

	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatches_RequesterNotLearning(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	teaches(alice.ID, "English", "C2")

	_, err := FindMatches(alice.ID, "Spanish", "C2", CountryAny)

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, http.StatusPreconditionFailed))
}

func TestFindMatches_UnknownVocabulary(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	learns(alice.ID, "Spanish", "A2")

	_, err := FindMatches(alice.ID, "Klingon", "C2", CountryAny)
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))

	_, err = FindMatches(alice.ID, "Spanish", "Z9", CountryAny)
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))
}

func TestFindMatches_EmptyTeachSet(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	alice := createTestUser(t, "alice")
	learns(alice.ID, "Spanish", "A2")

	bruno := createTestUser(t, "bruno")
	teaches(bruno.ID, "Spanish", "C2")
	learns(bruno.ID, "English", "B1")

	matches, err := FindMatches(alice.ID, "Spanish", "C2", CountryAny)

	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatches_CountryFilter(t *testing.T) {
	setupTestDB(t)
	seedVocabulary(t)

	madrid := cityIn(t, "Madrid", "Spain")

	alice := createTestUser(t, "alice")
	teaches(alice.ID, "English", "C2")
	learns(alice.ID, "Spanish", "A2")

	bruno := createTestUser(t, "bruno")
	database.DB.Model(&bruno).Update("city_id", madrid.ID)
	teaches(bruno.ID, "Spanish", "C2")
	learns(bruno.ID, "English", "B1")

	// Same qualifications but no city on record.
	nomad := createTestUser(t, "nomad")
	teaches(nomad.ID, "Spanish", "C2")
	learns(nomad.ID, "English", "A1")

	matches, err := FindMatches(alice.ID, "Spanish", "C2", "Spain")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, bruno.ID, matches[0].ID)

	matches, err = FindMatches(alice.ID, "Spanish", "C2", "France")
	assert.NoError(t, err)
	assert.Empty(t, matches)

	// "any" is matched case-insensitively.
	matches, err = FindMatches(alice.ID, "Spanish", "C2", "any")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
}
