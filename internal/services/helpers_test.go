package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/data/repos"
	"github.com/yungbote/neurobridge-lms/internal/data/repos/testutil"
	"github.com/yungbote/neurobridge-lms/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

const testSecret = "test-secret"

type testEnv struct {
	db  *gorm.DB
	log *logger.Logger

	users    repos.UserRepo
	orgs     repos.OrganizationRepo
	policies repos.LearningPolicyRepo
	courses  repos.CourseRepo
	modules  repos.CourseModuleRepo
	lessons  repos.LessonRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return &testEnv{
		db:       db,
		log:      log,
		users:    repos.NewUserRepo(db, log),
		orgs:     repos.NewOrganizationRepo(db, log),
		policies: repos.NewLearningPolicyRepo(db, log),
		courses:  repos.NewCourseRepo(db, log),
		modules:  repos.NewCourseModuleRepo(db, log),
		lessons:  repos.NewLessonRepo(db, log),
	}
}

func (e *testEnv) auth(ttl time.Duration) AuthService {
	svc := NewAuthService(e.db, e.log, e.users, e.orgs, NewMemoryTokenStore(), testSecret, ttl)
	svc.(*authService).bcryptCost = bcrypt.MinCost
	return svc
}

func (e *testEnv) courseService() CourseService {
	return NewCourseService(e.db, e.log, e.courses, e.modules, e.lessons, e.users)
}

func (e *testEnv) moduleService() ModuleService {
	return NewModuleService(e.db, e.log, e.courses, e.modules)
}

func (e *testEnv) lessonService() LessonService {
	return NewLessonService(e.db, e.log, e.modules, e.lessons)
}

func asCaller(userID uuid.UUID, role string, orgID *uuid.UUID) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		UserID:         userID,
		Role:           role,
		OrganizationID: orgID,
	})
}
