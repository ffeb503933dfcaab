package domain

import (
	"github.com/google/uuid"
	"github.com/yungbote/neurobridge-lms/internal/domain/learning"
	"github.com/yungbote/neurobridge-lms/internal/domain/org"
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
)

const (
	RoleSuperAdmin = user.RoleSuperAdmin
	RoleAdmin      = user.RoleAdmin
	RoleTrainer    = user.RoleTrainer
	RoleLearner    = user.RoleLearner

	CourseStatusDraft     = learning.CourseStatusDraft
	CourseStatusPublished = learning.CourseStatusPublished
	CourseStatusArchived  = learning.CourseStatusArchived
)

type (
	User           = user.User
	PublicUser     = user.PublicUser
	TrainerSummary = user.TrainerSummary

	Organization   = org.Organization
	LearningPolicy = org.LearningPolicy

	Course            = learning.Course
	CourseDetail      = learning.CourseDetail
	CourseModule      = learning.CourseModule
	ModuleWithLessons = learning.ModuleWithLessons
	Lesson            = learning.Lesson
)

// Models lists every persisted type in migration order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Organization{},
		&LearningPolicy{},
		&Course{},
		&CourseModule{},
		&Lesson{},
	}
}

func NewLearningPolicy(orgID uuid.UUID) *LearningPolicy { return org.NewLearningPolicy(orgID) }
