package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/http"
	httpH "github.com/yungbote/neurobridge-lms/internal/http/handlers"
	httpMW "github.com/yungbote/neurobridge-lms/internal/http/middleware"
	"github.com/yungbote/neurobridge-lms/internal/observability"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health       *httpH.HealthHandler
	Auth         *httpH.AuthHandler
	Course       *httpH.CourseHandler
	Module       *httpH.ModuleHandler
	Lesson       *httpH.LessonHandler
	Organization *httpH.OrganizationHandler
	Settings     *httpH.SettingsHandler
	User         *httpH.UserHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       httpH.NewHealthHandler(db, metrics),
		Auth:         httpH.NewAuthHandler(services.Auth, metrics),
		Course:       httpH.NewCourseHandler(services.Course),
		Module:       httpH.NewModuleHandler(services.Module),
		Lesson:       httpH.NewLessonHandler(services.Lesson),
		Organization: httpH.NewOrganizationHandler(services.Organization),
		Settings:     httpH.NewSettingsHandler(services.LearningPolicy),
		User:         httpH.NewUserHandler(services.User),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *http.Server {
	return http.NewServer(cfg.Address(), http.RouterConfig{
		Log:                 log,
		Metrics:             metrics,
		ServiceName:         cfg.Otel.ServiceName,
		TracingEnabled:      cfg.Otel.Enabled,
		AllowedOrigins:      cfg.CORSAllowedOrigins,
		AuthMiddleware:      middleware.Auth,
		HealthHandler:       handlers.Health,
		AuthHandler:         handlers.Auth,
		CourseHandler:       handlers.Course,
		ModuleHandler:       handlers.Module,
		LessonHandler:       handlers.Lesson,
		OrganizationHandler: handlers.Organization,
		SettingsHandler:     handlers.Settings,
		UserHandler:         handlers.User,
	})
}
