package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lesson struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ModuleID    uuid.UUID     `gorm:"column:module_id;type:uuid;not null;index:idx_lesson_module_order" json:"moduleId"`
	Module      *CourseModule `gorm:"constraint:OnDelete:CASCADE;foreignKey:ModuleID;references:ID" json:"-"`
	Title       string        `gorm:"column:title;not null" json:"title"`
	Description string        `gorm:"column:description;type:text" json:"description,omitempty"`
	ContentType string        `gorm:"column:content_type;not null" json:"contentType"`
	ContentURL  string        `gorm:"column:content_url" json:"contentUrl,omitempty"`
	TextContent string        `gorm:"column:text_content;type:text" json:"textContent,omitempty"`
	Duration    int           `gorm:"column:duration;not null;default:0" json:"duration"`
	Order       int           `gorm:"column:sort_order;not null;default:0;index:idx_lesson_module_order" json:"order"`
	Preview     bool          `gorm:"column:is_preview;not null;default:false" json:"isPreview"`
	Active      bool          `gorm:"column:is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Lesson) TableName() string { return "lesson" }

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
