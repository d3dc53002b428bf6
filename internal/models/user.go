package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Nickname is the public display name, unique across the app.
	Nickname string `gorm:"uniqueIndex;size:32;not null" json:"nickname"`
	Login    string `gorm:"uniqueIndex;size:32;not null" json:"-"`
	Email    string `gorm:"uniqueIndex;size:254" json:"email"`
	Password string `json:"-"`

	CityID *string `gorm:"type:text;index" json:"cityId"`
	City   *City   `gorm:"foreignKey:CityID" json:"city,omitempty"`

	DayOfBirth       *time.Time `json:"dayOfBirth"`
	RegistrationDate time.Time  `json:"registrationDate"`

	AvatarURL string `json:"avatarUrl"`

	// Target language for the translate-on-demand feature, ISO 639-1 code.
	TranslationLanguage string `gorm:"size:10;default:'en'" json:"translationLanguage"`

	// RSA material for end-to-end encryption, generated at registration.
	// The private key is only ever returned through the dedicated key
	// endpoint, never in profile payloads.
	PublicKey  string `gorm:"type:text" json:"-"`
	PrivateKey string `gorm:"type:text" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// TeachLanguage is one entry of a user's teach set: the user offers to teach
// Language at Proficiency. At most one entry per (user, language).
type TeachLanguage struct {
	UserID       string `gorm:"primaryKey;type:text" json:"userId"`
	LanguageName string `gorm:"primaryKey;size:32" json:"language"`
	Proficiency  string `gorm:"size:32;not null" json:"proficiencyLevel"`
}

func (TeachLanguage) TableName() string { return "teach_languages" }

// LearnLanguage is one entry of a user's learn set. A language never appears
// in both the teach set and the learn set of the same user; the service layer
// re-validates that on every mutation.
type LearnLanguage struct {
	UserID       string `gorm:"primaryKey;type:text" json:"userId"`
	LanguageName string `gorm:"primaryKey;size:32" json:"language"`
	Proficiency  string `gorm:"size:32;not null" json:"proficiencyLevel"`
}

func (LearnLanguage) TableName() string { return "learn_languages" }
