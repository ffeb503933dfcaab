package org

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultCourseCompletionPercentage = 75
	DefaultAssessmentPassPercentage   = 50
)

// LearningPolicy holds per-organization thresholds. Nothing reads them to
// gate completion yet; they are stored and returned as given.
type LearningPolicy struct {
	ID                         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID             uuid.UUID     `gorm:"column:organization_id;type:uuid;not null;uniqueIndex" json:"organizationId"`
	Organization               *Organization `gorm:"constraint:OnDelete:CASCADE;foreignKey:OrganizationID;references:ID" json:"-"`
	CourseCompletionPercentage int           `gorm:"column:course_completion_percentage;not null" json:"courseCompletionPercentage"`
	AssessmentPassPercentage   int           `gorm:"column:assessment_pass_percentage;not null" json:"assessmentPassPercentage"`
	CertificationEnabled       bool          `gorm:"column:certification_enabled;not null" json:"certificationEnabled"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (LearningPolicy) TableName() string { return "learning_policy" }

func (p *LearningPolicy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewLearningPolicy returns a policy for orgID carrying the default thresholds.
func NewLearningPolicy(orgID uuid.UUID) *LearningPolicy {
	return &LearningPolicy{
		OrganizationID:             orgID,
		CourseCompletionPercentage: DefaultCourseCompletionPercentage,
		AssessmentPassPercentage:   DefaultAssessmentPassPercentage,
		CertificationEnabled:       true,
	}
}
