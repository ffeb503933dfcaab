package learning

import (
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Course struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string     `gorm:"column:title;not null" json:"title"`
	Description    string     `gorm:"column:description;type:text;not null" json:"description"`
	OrganizationID *uuid.UUID `gorm:"column:organization_id;type:uuid;index:idx_course_org_status" json:"organizationId,omitempty"`
	TrainerID      uuid.UUID  `gorm:"column:trainer_id;type:uuid;not null;index" json:"trainerId"`

	Category     string  `gorm:"column:category;not null;default:OTHER;index" json:"category"`
	Difficulty   string  `gorm:"column:difficulty;not null;default:BEGINNER;index" json:"difficulty"`
	Duration     float64 `gorm:"column:duration;not null;default:0" json:"duration"`
	ThumbnailURL string  `gorm:"column:thumbnail_url" json:"thumbnailUrl,omitempty"`
	Status       string  `gorm:"column:status;not null;default:DRAFT;index:idx_course_org_status" json:"status"`

	Tags               datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	Prerequisites      datatypes.JSONSlice[string] `gorm:"column:prerequisites" json:"prerequisites"`
	LearningObjectives datatypes.JSONSlice[string] `gorm:"column:learning_objectives" json:"learningObjectives"`

	Active    bool      `gorm:"column:is_active;not null;default:true;index" json:"isActive"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	// Filled by the service from the user table; not a column.
	Trainer *user.TrainerSummary `gorm:"-" json:"trainer,omitempty"`
}

func (Course) TableName() string { return "course" }

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CourseDetail is a course with its visible modules, each carrying its
// visible lessons, all in display order.
type CourseDetail struct {
	Course  *Course              `json:"course"`
	Modules []*ModuleWithLessons `json:"modules"`
}

type ModuleWithLessons struct {
	*CourseModule
	Lessons []*Lesson `json:"lessons"`
}
