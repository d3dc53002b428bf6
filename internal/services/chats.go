package services

import (
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	apperrors "github.com/polyglotlabs/linguachat-backend/pkg/errors"
	"gorm.io/gorm"
)

// CreateChat opens a conversation between two users. The chat row and both
// membership rows are written in a single transaction so a crash can never
// leave an orphan chat without members.
//
// Returns Conflict if a chat between the pair already exists, in either
// order of arguments.
func CreateChat(userAID, userBID string) (models.Chat, error) {
	var chat models.Chat

	if userAID == userBID {
		return chat, apperrors.BadRequest("Cannot create a chat with yourself")
	}

	var userA, userB models.User
	if err := database.DB.First(&userA, "id = ?", userAID).Error; err != nil {
		return chat, apperrors.NotFound("User not found")
	}
	if err := database.DB.First(&userB, "id = ?", userBID).Error; err != nil {
		return chat, apperrors.NotFound("User not found")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Scan A's chats for one that already has B. The existence check and
		// the insert share the transaction, closing the race between two
		// concurrent creates for the same pair.
		var memberships []models.ChatMember
		if err := tx.Where("user_id = ?", userAID).Find(&memberships).Error; err != nil {
			return apperrors.Internal("Failed to list chats")
		}
		for _, m := range memberships {
			var withB int64
			tx.Model(&models.ChatMember{}).
				Where("chat_id = ? AND user_id = ?", m.ChatID, userBID).
				Count(&withB)
			if withB > 0 {
				return apperrors.Conflict("Chat already exists between these users")
			}
		}

		chat = models.Chat{Name: userA.Nickname + " and " + userB.Nickname + " chat"}
		if err := tx.Create(&chat).Error; err != nil {
			return apperrors.Internal("Failed to create chat")
		}

		members := []models.ChatMember{
			{ChatID: chat.ID, UserID: userAID},
			{ChatID: chat.ID, UserID: userBID},
		}
		if err := tx.Create(&members).Error; err != nil {
			return apperrors.Internal("Failed to add chat members")
		}
		return nil
	})
	if err != nil {
		return models.Chat{}, err
	}

	return chat, nil
}

// ListChats returns every chat the user is a member of, order unspecified.
func ListChats(userID string) ([]models.Chat, error) {
	chats := []models.Chat{}
	err := database.DB.
		Joins("JOIN chat_members ON chat_members.chat_id = chats.id").
		Where("chat_members.user_id = ?", userID).
		Find(&chats).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list chats")
	}
	return chats, nil
}

// ChatMemberInfo is the member summary handed to clients so they can fetch
// each other's public keys.
type ChatMemberInfo struct {
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
}

// GetChatMembers returns the two participants of a chat.
func GetChatMembers(chatID string) ([]ChatMemberInfo, error) {
	if err := database.DB.First(&models.Chat{}, "id = ?", chatID).Error; err != nil {
		return nil, apperrors.NotFound("Chat not found")
	}

	members := []ChatMemberInfo{}
	err := database.DB.Model(&models.ChatMember{}).
		Select("chat_members.user_id, users.nickname").
		Joins("JOIN users ON users.id = chat_members.user_id").
		Where("chat_members.chat_id = ?", chatID).
		Scan(&members).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to load chat members")
	}
	return members, nil
}

// IsChatMember reports whether the user currently belongs to the chat.
func IsChatMember(chatID, userID string) bool {
	var n int64
	database.DB.Model(&models.ChatMember{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&n)
	return n > 0
}
