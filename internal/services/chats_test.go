package services

import (
	"net/http"
	"testing"

	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	apperrors "github.com/polyglotlabs/linguachat-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCreateChat(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")
	bruno := createTestUser(t, "bruno")

	chat, err := CreateChat(alice.ID, bruno.ID)

	assert.NoError(t, err)
	assert.NotEmpty(t, chat.ID)
	assert.Equal(t, "alice and bruno chat", chat.Name)

	var members int64
	database.DB.Model(&models.ChatMember{}).Where("chat_id = ?", chat.ID).Count(&members)
	assert.EqualValues(t, 2, members)
}

func TestCreateChat_DuplicatePair(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")
	bruno := createTestUser(t, "bruno")

	_, err := CreateChat(alice.ID, bruno.ID)
	assert.NoError(t, err)

	// Same order
	_, err = CreateChat(alice.ID, bruno.ID)
	assert.True(t, apperrors.IsCode(err, http.StatusConflict))

	// Reversed order is still the same pair
	_, err = CreateChat(bruno.ID, alice.ID)
	assert.True(t, apperrors.IsCode(err, http.StatusConflict))

	var chats int64
	database.DB.Model(&models.Chat{}).Count(&chats)
	assert.EqualValues(t, 1, chats)
}

func TestCreateChat_WithSelf(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")

	_, err := CreateChat(alice.ID, alice.ID)
	assert.True(t, apperrors.IsCode(err, http.StatusBadRequest))
}

func TestCreateChat_UnknownUser(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")

	_, err := CreateChat(alice.ID, "no-such-user")
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))
}

func TestListChats(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")
	bruno := createTestUser(t, "bruno")
	carla := createTestUser(t, "carla")

	chatAB, _ := CreateChat(alice.ID, bruno.ID)
	chatAC, _ := CreateChat(alice.ID, carla.ID)

	chats, err := ListChats(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, chats, 2)

	ids := []string{chats[0].ID, chats[1].ID}
	assert.Contains(t, ids, chatAB.ID)
	assert.Contains(t, ids, chatAC.ID)

	chats, err = ListChats(bruno.ID)
	assert.NoError(t, err)
	assert.Len(t, chats, 1)
	assert.Equal(t, chatAB.ID, chats[0].ID)
}

func TestGetChatMembers(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")
	bruno := createTestUser(t, "bruno")
	chat, _ := CreateChat(alice.ID, bruno.ID)

	members, err := GetChatMembers(chat.ID)
	assert.NoError(t, err)
	assert.Len(t, members, 2)

	nicknames := []string{members[0].Nickname, members[1].Nickname}
	assert.Contains(t, nicknames, "alice")
	assert.Contains(t, nicknames, "bruno")

	_, err = GetChatMembers("no-such-chat")
	assert.True(t, apperrors.IsCode(err, http.StatusNotFound))
}

func TestIsChatMember(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")
	bruno := createTestUser(t, "bruno")
	carla := createTestUser(t, "carla")
	chat, _ := CreateChat(alice.ID, bruno.ID)

	assert.True(t, IsChatMember(chat.ID, alice.ID))
	assert.True(t, IsChatMember(chat.ID, bruno.ID))
	assert.False(t, IsChatMember(chat.ID, carla.ID))
}
