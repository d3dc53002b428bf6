package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reference vocabulary. Languages and proficiency levels are keyed by name;
// everything else in the system refers to them by that name.

type Language struct {
	Name string `gorm:"primaryKey;size:32" json:"name"`
}

func (Language) TableName() string { return "languages" }

// ProficiencyLevel holds a CEFR level code ("A1".."C2") plus the label shown
// in pickers.
type ProficiencyLevel struct {
	Name        string `gorm:"primaryKey;size:32" json:"name"`
	DisplayName string `gorm:"size:64" json:"displayName"`
}

func (ProficiencyLevel) TableName() string { return "proficiency_levels" }

type Country struct {
	Name string `gorm:"primaryKey;size:32" json:"name"`
}

func (Country) TableName() string { return "countries" }

type City struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Name        string `gorm:"size:32;not null" json:"name"`
	CountryName string `gorm:"size:32;index;not null" json:"country"`
}

func (City) TableName() string { return "cities" }

func (c *City) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
