package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	apperrors "github.com/polyglotlabs/linguachat-backend/pkg/errors"
	"github.com/polyglotlabs/linguachat-backend/pkg/utils"
	"gorm.io/gorm"
)

// InboundMessage is what a client publishes on the chat channel. ID is
// normally empty; clients re-send it on retry so the relay can deduplicate.
type InboundMessage struct {
	ID                    string `json:"id,omitempty"`
	EncryptedText         string `json:"encryptedText"`
	EncryptedKeySender    string `json:"encryptedAesKeySender"`
	EncryptedKeyRecipient string `json:"encryptedAesKeyRecipient"`
	IV                    string `json:"iv"`
}

// MessagePayload is the canonical persisted form, identical on the broadcast
// topic and in history responses.
type MessagePayload struct {
	ID                    string `json:"id"`
	ChatID                string `json:"chatId"`
	SenderID              string `json:"senderId"`
	SenderName            string `json:"senderName"`
	Timestamp             string `json:"timestamp"`
	EncryptedText         string `json:"encryptedText"`
	EncryptedKeySender    string `json:"encryptedAesKeySender"`
	EncryptedKeyRecipient string `json:"encryptedAesKeyRecipient"`
	IV                    string `json:"iv"`
}

// Broadcaster fans a persisted message out to everyone subscribed to the
// chat's topic. Delivery is best-effort: a subscriber that is gone simply
// misses the push and catches up through GetHistory.
type Broadcaster interface {
	BroadcastMessage(chatID string, payload MessagePayload)
}

func toPayload(msg models.Message, senderName string) MessagePayload {
	return MessagePayload{
		ID:                    msg.ID,
		ChatID:                msg.ChatID,
		SenderID:              msg.SenderID,
		SenderName:            senderName,
		Timestamp:             msg.SentAt.UTC().Format(time.RFC3339Nano),
		EncryptedText:         msg.EncryptedText,
		EncryptedKeySender:    msg.EncryptedKeySender,
		EncryptedKeyRecipient: msg.EncryptedKeyRecipient,
		IV:                    msg.IV,
	}
}

// SendMessage validates and durably persists one inbound message, returning
// the canonical payload to broadcast. Persistence and publishing are separate
// phases: the caller hands the returned payload to a Broadcaster once this
// returns nil.
//
// Replay guard: if the inbound message carries an id that is already stored,
// the stored row is returned unchanged and nothing is written. Both the
// existence check and the insert run inside one transaction, so a concurrent
// retry cannot produce a second row.
func SendMessage(senderID, chatID string, in InboundMessage) (MessagePayload, error) {
	if len(in.IV) > 24 {
		return MessagePayload{}, apperrors.BadRequest("IV must be at most 16 bytes (24 base64 characters)")
	}
	if in.ID != "" && !utils.IsUUID(in.ID) {
		return MessagePayload{}, apperrors.BadRequest("Message id must be a UUID")
	}

	var msg models.Message
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if in.ID != "" {
			err := tx.First(&msg, "id = ?", in.ID).Error
			if err == nil {
				return nil // idempotent replay
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Internal("Failed to check message id")
			}
		}

		var sender models.User
		if err := tx.First(&sender, "id = ?", senderID).Error; err != nil {
			return apperrors.NotFound("User not found")
		}
		if err := tx.First(&models.Chat{}, "id = ?", chatID).Error; err != nil {
			return apperrors.NotFound("Chat not found")
		}

		var member int64
		tx.Model(&models.ChatMember{}).
			Where("chat_id = ? AND user_id = ?", chatID, senderID).
			Count(&member)
		if member == 0 {
			return apperrors.Forbidden("User is not a member of this chat")
		}

		msg = models.Message{
			ID:                    in.ID,
			ChatID:                chatID,
			SenderID:              senderID,
			SentAt:                time.Now().UTC(),
			EncryptedText:         in.EncryptedText,
			EncryptedKeySender:    in.EncryptedKeySender,
			EncryptedKeyRecipient: in.EncryptedKeyRecipient,
			IV:                    in.IV,
		}
		if msg.ID == "" {
			msg.ID = uuid.New().String()
		}
		return tx.Create(&msg).Error
	})
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return MessagePayload{}, appErr
		}
		return MessagePayload{}, apperrors.Internal("Failed to persist message")
	}

	var sender models.User
	if err := database.DB.First(&sender, "id = ?", msg.SenderID).Error; err != nil {
		return MessagePayload{}, apperrors.Internal("Failed to load sender")
	}

	return toPayload(msg, sender.Nickname), nil
}

// GetHistory returns every message of a chat ordered by ascending send time.
// A client that missed broadcasts while disconnected re-syncs through this;
// there is no server-side replay queue.
func GetHistory(chatID string) ([]MessagePayload, error) {
	if err := database.DB.First(&models.Chat{}, "id = ?", chatID).Error; err != nil {
		return nil, apperrors.NotFound("Chat not found")
	}

	var msgs []models.Message
	if err := database.DB.
		Where("chat_id = ?", chatID).
		Order("sent_at asc").
		Find(&msgs).Error; err != nil {
		return nil, apperrors.Internal("Failed to load messages")
	}

	// One lookup per distinct sender; a chat only ever has two.
	names := map[string]string{}
	payloads := make([]MessagePayload, 0, len(msgs))
	for _, m := range msgs {
		name, ok := names[m.SenderID]
		if !ok {
			var sender models.User
			if err := database.DB.Select("nickname").First(&sender, "id = ?", m.SenderID).Error; err == nil {
				name = sender.Nickname
			}
			names[m.SenderID] = name
		}
		payloads = append(payloads, toPayload(m, name))
	}
	return payloads, nil
}
