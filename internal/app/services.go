package app

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

type Services struct {
	Auth           services.AuthService
	Course         services.CourseService
	Module         services.ModuleService
	Lesson         services.LessonService
	Organization   services.OrganizationService
	LearningPolicy services.LearningPolicyService
	User           services.UserService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, rdb *goredis.Client) Services {
	log.Info("Wiring services...")

	// Revocations only survive restarts and span replicas when redis is up.
	revoked := services.NewMemoryTokenStore()
	if rdb != nil {
		revoked = services.NewRedisTokenStore(log, rdb)
	}

	return Services{
		Auth:           services.NewAuthService(db, log, r.User, r.Organization, revoked, cfg.JWTSecretKey, cfg.JWTExpiresIn),
		Course:         services.NewCourseService(db, log, r.Course, r.CourseModule, r.Lesson, r.User),
		Module:         services.NewModuleService(db, log, r.Course, r.CourseModule),
		Lesson:         services.NewLessonService(db, log, r.CourseModule, r.Lesson),
		Organization:   services.NewOrganizationService(db, log, r.Organization),
		LearningPolicy: services.NewLearningPolicyService(db, log, r.Organization, r.LearningPolicy),
		User:           services.NewUserService(db, log, r.User, r.Organization),
	}
}
