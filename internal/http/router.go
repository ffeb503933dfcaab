package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/neurobridge-lms/internal/authz"
	httpH "github.com/yungbote/neurobridge-lms/internal/http/handlers"
	httpMW "github.com/yungbote/neurobridge-lms/internal/http/middleware"
	"github.com/yungbote/neurobridge-lms/internal/observability"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	TracingEnabled bool
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler         *httpH.AuthHandler
	CourseHandler       *httpH.CourseHandler
	ModuleHandler       *httpH.ModuleHandler
	LessonHandler       *httpH.LessonHandler
	OrganizationHandler *httpH.OrganizationHandler
	SettingsHandler     *httpH.SettingsHandler
	UserHandler         *httpH.UserHandler
	HealthHandler       *httpH.HealthHandler
}

const metricsPath = "/metrics"

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics, metricsPath))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		if cfg.Metrics != nil {
			r.GET(metricsPath, cfg.HealthHandler.Metrics)
		}
	}

	api := r.Group("/api")

	// Auth (public)
	if cfg.AuthHandler != nil {
		api.POST("/auth/register", cfg.AuthHandler.Register)
		api.POST("/auth/login", cfg.AuthHandler.Login)
	}

	if cfg.AuthMiddleware == nil {
		return r
	}
	am := cfg.AuthMiddleware
	protected := api.Group("/")
	protected.Use(am.RequireAuth())

	// Auth (protected)
	if cfg.AuthHandler != nil {
		protected.GET("/auth/me", cfg.AuthHandler.Me)
		protected.POST("/auth/logout", cfg.AuthHandler.Logout)
	}

	// Course
	if h := cfg.CourseHandler; h != nil {
		protected.GET("/courses", h.ListCourses)
		protected.POST("/courses", am.Require(authz.CourseCreate), h.CreateCourse)
		protected.GET("/courses/:id", h.GetCourse)
		protected.PUT("/courses/:id", am.Require(authz.CourseUpdate), h.UpdateCourse)
		protected.PATCH("/courses/:id/publish", am.Require(authz.CoursePublish), h.SetCourseStatus)
		protected.DELETE("/courses/:id", am.Require(authz.CourseDelete), h.DeleteCourse)
	}

	// Module
	if h := cfg.ModuleHandler; h != nil {
		protected.POST("/courses/:id/modules", am.Require(authz.ModuleCreate), h.CreateModule)
		protected.GET("/courses/modules/:id", h.GetModule)
		protected.PUT("/courses/modules/:id", am.Require(authz.ModuleUpdate), h.UpdateModule)
		protected.DELETE("/courses/modules/:id", am.Require(authz.ModuleDelete), h.DeleteModule)
	}

	// Lesson
	if h := cfg.LessonHandler; h != nil {
		protected.POST("/courses/modules/:id/lessons", am.Require(authz.LessonCreate), h.CreateLesson)
		protected.GET("/courses/lessons/:id", h.GetLesson)
		protected.PUT("/courses/lessons/:id", am.Require(authz.LessonUpdate), h.UpdateLesson)
		protected.DELETE("/courses/lessons/:id", am.Require(authz.LessonDelete), h.DeleteLesson)
	}

	// Organization
	if h := cfg.OrganizationHandler; h != nil {
		protected.POST("/organizations", am.Require(authz.OrganizationCreate), h.CreateOrganization)
		protected.GET("/organizations/:id", h.GetOrganization)
		protected.PUT("/organizations/:id", am.Require(authz.OrganizationUpdate), h.UpdateOrganization)
	}

	// Settings (learning policy)
	if h := cfg.SettingsHandler; h != nil {
		protected.POST("/settings", am.Require(authz.PolicyCreate), h.CreatePolicy)
		protected.GET("/settings/:orgId", h.GetPolicy)
		protected.PUT("/settings/:orgId", am.Require(authz.PolicyUpdate), h.UpdatePolicy)
	}

	// Users
	if h := cfg.UserHandler; h != nil {
		protected.GET("/users", am.Require(authz.UserList), h.ListUsers)
		protected.PUT("/users/:id", am.Require(authz.UserUpdate), h.UpdateUser)
	}

	return r
}
