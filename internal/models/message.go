package models

import "time"

// Message is an opaque ciphertext blob relayed between chat members. The
// server assigns ID and SentAt at persistence time and never decrypts the
// payload. The AES key is RSA-wrapped twice: once for each side, so both can
// decrypt their copy of the conversation.
type Message struct {
	ID       string    `gorm:"primaryKey;type:text" json:"id"`
	ChatID   string    `gorm:"type:text;index;not null" json:"chatId"`
	SenderID string    `gorm:"type:text;index;not null" json:"senderId"`
	SentAt   time.Time `gorm:"index" json:"sentAt"`

	EncryptedText         string `gorm:"type:text;not null" json:"encryptedText"`
	EncryptedKeySender    string `gorm:"type:text" json:"encryptedAesKeySender"`
	EncryptedKeyRecipient string `gorm:"type:text" json:"encryptedAesKeyRecipient"`
	// 16 random bytes, base64-encoded by the client (24 chars).
	IV string `gorm:"size:24" json:"iv"`
}

func (Message) TableName() string { return "messages" }
