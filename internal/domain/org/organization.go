package org

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultTimezone   = "Asia/Kolkata"
	DefaultLanguage   = "en"
	DefaultThemeColor = "#2563eb"
)

type Organization struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Address      string    `gorm:"column:address" json:"address"`
	ContactEmail string    `gorm:"column:contact_email" json:"contactEmail"`
	ContactPhone string    `gorm:"column:contact_phone" json:"contactPhone"`
	Timezone     string    `gorm:"column:timezone;not null" json:"timezone"`
	Language     string    `gorm:"column:language;not null" json:"language"`

	// Branding
	LogoURL    string `gorm:"column:logo_url" json:"logoUrl"`
	ThemeColor string `gorm:"column:theme_color;not null" json:"themeColor"`

	Active    bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Organization) TableName() string { return "organization" }

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Timezone == "" {
		o.Timezone = DefaultTimezone
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if o.ThemeColor == "" {
		o.ThemeColor = DefaultThemeColor
	}
	return nil
}
