package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chat is a two-party conversation. Members are tracked in chat_members;
// there is never more than one chat for a given pair of users.
type Chat struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Name      string    `gorm:"size:80" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Chat) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

type ChatMember struct {
	ChatID   string    `gorm:"primaryKey;type:text" json:"chatId"`
	UserID   string    `gorm:"primaryKey;type:text" json:"userId"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

func (ChatMember) TableName() string { return "chat_members" }
