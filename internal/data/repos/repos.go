package repos

import (
	"github.com/yungbote/neurobridge-lms/internal/data/repos/learning"
	"github.com/yungbote/neurobridge-lms/internal/data/repos/org"
	"github.com/yungbote/neurobridge-lms/internal/data/repos/user"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo

type OrganizationRepo = org.OrganizationRepo
type LearningPolicyRepo = org.LearningPolicyRepo

type CourseRepo = learning.CourseRepo
type CourseModuleRepo = learning.CourseModuleRepo
type LessonRepo = learning.LessonRepo
type CourseQuery = learning.CourseQuery

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo { return user.NewUserRepo(db, log) }

func NewOrganizationRepo(db *gorm.DB, log *logger.Logger) OrganizationRepo {
	return org.NewOrganizationRepo(db, log)
}
func NewLearningPolicyRepo(db *gorm.DB, log *logger.Logger) LearningPolicyRepo {
	return org.NewLearningPolicyRepo(db, log)
}

func NewCourseRepo(db *gorm.DB, log *logger.Logger) CourseRepo {
	return learning.NewCourseRepo(db, log)
}
func NewCourseModuleRepo(db *gorm.DB, log *logger.Logger) CourseModuleRepo {
	return learning.NewCourseModuleRepo(db, log)
}
func NewLessonRepo(db *gorm.DB, log *logger.Logger) LessonRepo {
	return learning.NewLessonRepo(db, log)
}
