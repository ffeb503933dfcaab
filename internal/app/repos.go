package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/data/repos"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

type Repos struct {
	User           repos.UserRepo
	Organization   repos.OrganizationRepo
	LearningPolicy repos.LearningPolicyRepo
	Course         repos.CourseRepo
	CourseModule   repos.CourseModuleRepo
	Lesson         repos.LessonRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           repos.NewUserRepo(db, log),
		Organization:   repos.NewOrganizationRepo(db, log),
		LearningPolicy: repos.NewLearningPolicyRepo(db, log),
		Course:         repos.NewCourseRepo(db, log),
		CourseModule:   repos.NewCourseModuleRepo(db, log),
		Lesson:         repos.NewLessonRepo(db, log),
	}
}
