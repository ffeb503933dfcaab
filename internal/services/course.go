package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/authz"
	"github.com/yungbote/neurobridge-lms/internal/data/repos"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/domain/learning"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"github.com/yungbote/neurobridge-lms/internal/platform/normalization"
)

const (
	MsgCourseRequired    = "Title and description are required"
	MsgCourseNotFound    = "Course not found"
	MsgInvalidStatus     = "Invalid status"
	MsgCourseNotOwner    = "Not authorized to update this course"
	MsgInvalidCategory   = "Invalid category"
	MsgInvalidDifficulty = "Invalid difficulty"
	MsgNegativeDuration  = "duration must be at least 0"
)

type CreateCourseInput struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Difficulty         string   `json:"difficulty"`
	Duration           float64  `json:"duration"`
	ThumbnailURL       string   `json:"thumbnailUrl"`
	Tags               []string `json:"tags"`
	Prerequisites      []string `json:"prerequisites"`
	LearningObjectives []string `json:"learningObjectives"`
}

type CourseFilter struct {
	Status     string
	Category   string
	Difficulty string
	Search     string
}

// CourseUpdate carries only the fields the caller sent. Nil means unchanged.
type CourseUpdate struct {
	Title              *string  `json:"title" validate:"omitnil,notblank"`
	Description        *string  `json:"description" validate:"omitnil,notblank"`
	Category           *string  `json:"category" validate:"omitnil,course_category"`
	Difficulty         *string  `json:"difficulty" validate:"omitnil,course_difficulty"`
	Duration           *float64 `json:"duration" validate:"omitnil,gte=0"`
	ThumbnailURL       *string  `json:"thumbnailUrl"`
	Status             *string  `json:"status" validate:"omitnil,course_status"`
	Tags               []string `json:"tags"`
	Prerequisites      []string `json:"prerequisites"`
	LearningObjectives []string `json:"learningObjectives"`
}

type CourseService interface {
	CreateCourse(ctx context.Context, in CreateCourseInput) (*types.Course, error)
	ListCourses(ctx context.Context, filter CourseFilter) ([]*types.Course, error)
	GetCourseDetail(ctx context.Context, courseID uuid.UUID) (*types.CourseDetail, error)
	UpdateCourse(ctx context.Context, courseID uuid.UUID, upd CourseUpdate) (*types.Course, error)
	SetCourseStatus(ctx context.Context, courseID uuid.UUID, status string) (*types.Course, error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) error
}

type courseService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
	moduleRepo repos.CourseModuleRepo
	lessonRepo repos.LessonRepo
	userRepo   repos.UserRepo
}

func NewCourseService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	moduleRepo repos.CourseModuleRepo,
	lessonRepo repos.LessonRepo,
	userRepo repos.UserRepo,
) CourseService {
	return &courseService{
		db:         db,
		log:        baseLog.With("service", "CourseService"),
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
		userRepo:   userRepo,
	}
}

func (cs *courseService) CreateCourse(ctx context.Context, in CreateCourseInput) (*types.Course, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, logFailure(cs.log, "create course", apierr.Auth(MsgNotAuthenticated))
	}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, logFailure(cs.log, "create course", apierr.Validation(MsgCourseRequired))
	}

	category := normalization.ParseEnum(in.Category)
	if category == "" {
		category = learning.CategoryOther
	}
	if !learning.IsValidCategory(category) {
		return nil, logFailure(cs.log, "create course", apierr.Validation(MsgInvalidCategory))
	}
	difficulty := normalization.ParseEnum(in.Difficulty)
	if difficulty == "" {
		difficulty = learning.DifficultyBeginner
	}
	if !learning.IsValidDifficulty(difficulty) {
		return nil, logFailure(cs.log, "create course", apierr.Validation(MsgInvalidDifficulty))
	}
	if in.Duration < 0 {
		return nil, logFailure(cs.log, "create course", apierr.Validation(MsgNegativeDuration))
	}

	c := &types.Course{
		Title:              title,
		Description:        description,
		OrganizationID:     rd.OrganizationID,
		TrainerID:          rd.UserID,
		Category:           category,
		Difficulty:         difficulty,
		Duration:           in.Duration,
		ThumbnailURL:       strings.TrimSpace(in.ThumbnailURL),
		Status:             learning.CourseStatusDraft,
		Tags:               stringList(in.Tags),
		Prerequisites:      stringList(in.Prerequisites),
		LearningObjectives: stringList(in.LearningObjectives),
		Active:             true,
	}
	if _, err := cs.courseRepo.Create(ctx, nil, []*types.Course{c}); err != nil {
		return nil, logFailure(cs.log, "create course", internal("create course", err))
	}
	cs.log.Info("course created", "course_id", c.ID, "trainer_id", c.TrainerID)
	return c, nil
}

func (cs *courseService) ListCourses(ctx context.Context, filter CourseFilter) ([]*types.Course, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, logFailure(cs.log, "list courses", apierr.Auth(MsgNotAuthenticated))
	}
	courses, err := cs.courseRepo.ListActive(ctx, nil, repos.CourseQuery{
		OrganizationID: rd.OrganizationID,
		Status:         normalization.ParseEnum(filter.Status),
		Category:       normalization.ParseEnum(filter.Category),
		Difficulty:     normalization.ParseEnum(filter.Difficulty),
		Search:         strings.TrimSpace(filter.Search),
	})
	if err != nil {
		return nil, logFailure(cs.log, "list courses", internal("list courses", err))
	}
	if err := cs.attachTrainers(ctx, courses); err != nil {
		return nil, logFailure(cs.log, "list courses", err)
	}
	return courses, nil
}

func (cs *courseService) GetCourseDetail(ctx context.Context, courseID uuid.UUID) (*types.CourseDetail, error) {
	course, err := cs.getCourse(ctx, courseID)
	if err != nil {
		return nil, logFailure(cs.log, "get course", err)
	}
	if err := cs.attachTrainers(ctx, []*types.Course{course}); err != nil {
		return nil, logFailure(cs.log, "get course", err)
	}

	modules, err := cs.moduleRepo.GetActiveByCourseIDs(ctx, nil, []uuid.UUID{course.ID})
	if err != nil {
		return nil, logFailure(cs.log, "get course", internal("load modules", err))
	}
	moduleIDs := make([]uuid.UUID, 0, len(modules))
	for _, m := range modules {
		moduleIDs = append(moduleIDs, m.ID)
	}
	lessons, err := cs.lessonRepo.GetActiveByModuleIDs(ctx, nil, moduleIDs)
	if err != nil {
		return nil, logFailure(cs.log, "get course", internal("load lessons", err))
	}
	byModule := make(map[uuid.UUID][]*types.Lesson, len(modules))
	for _, l := range lessons {
		byModule[l.ModuleID] = append(byModule[l.ModuleID], l)
	}

	detail := &types.CourseDetail{Course: course, Modules: make([]*types.ModuleWithLessons, 0, len(modules))}
	for _, m := range modules {
		ls := byModule[m.ID]
		if ls == nil {
			ls = []*types.Lesson{}
		}
		detail.Modules = append(detail.Modules, &types.ModuleWithLessons{CourseModule: m, Lessons: ls})
	}
	return detail, nil
}

func (cs *courseService) UpdateCourse(ctx context.Context, courseID uuid.UUID, upd CourseUpdate) (*types.Course, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, logFailure(cs.log, "update course", apierr.Auth(MsgNotAuthenticated))
	}
	course, err := cs.getCourse(ctx, courseID)
	if err != nil {
		return nil, logFailure(cs.log, "update course", err)
	}
	if course.TrainerID != rd.UserID && !authz.IsAdmin(rd) {
		return nil, logFailure(cs.log, "update course", apierr.Forbidden(MsgCourseNotOwner))
	}

	upd.Title = normalization.TrimPtr(upd.Title)
	upd.Description = normalization.TrimPtr(upd.Description)
	upd.ThumbnailURL = normalization.TrimPtr(upd.ThumbnailURL)
	upd.Category = normalization.ParseEnumPtr(upd.Category)
	upd.Difficulty = normalization.ParseEnumPtr(upd.Difficulty)
	upd.Status = normalization.ParseEnumPtr(upd.Status)
	if err := validateInput(upd); err != nil {
		return nil, logFailure(cs.log, "update course", err)
	}

	updates := map[string]any{}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Category != nil {
		updates["category"] = *upd.Category
	}
	if upd.Difficulty != nil {
		updates["difficulty"] = *upd.Difficulty
	}
	if upd.Duration != nil {
		updates["duration"] = *upd.Duration
	}
	if upd.ThumbnailURL != nil {
		updates["thumbnail_url"] = *upd.ThumbnailURL
	}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}
	if upd.Tags != nil {
		updates["tags"] = stringList(upd.Tags)
	}
	if upd.Prerequisites != nil {
		updates["prerequisites"] = stringList(upd.Prerequisites)
	}
	if upd.LearningObjectives != nil {
		updates["learning_objectives"] = stringList(upd.LearningObjectives)
	}

	if err := cs.courseRepo.UpdateFields(ctx, nil, course.ID, updates); err != nil {
		return nil, logFailure(cs.log, "update course", internal("update course", err))
	}
	updated, err := cs.getCourse(ctx, course.ID)
	if err != nil {
		return nil, logFailure(cs.log, "update course", err)
	}
	cs.log.Info("course updated", "course_id", course.ID, "fields", len(updates))
	return updated, nil
}

// SetCourseStatus accepts the status literals exactly; "published" is rejected.
func (cs *courseService) SetCourseStatus(ctx context.Context, courseID uuid.UUID, status string) (*types.Course, error) {
	if !learning.IsValidCourseStatus(status) {
		return nil, logFailure(cs.log, "set course status", apierr.Validation(MsgInvalidStatus))
	}
	course, err := cs.getCourse(ctx, courseID)
	if err != nil {
		return nil, logFailure(cs.log, "set course status", err)
	}
	if err := cs.courseRepo.UpdateFields(ctx, nil, course.ID, map[string]any{"status": status}); err != nil {
		return nil, logFailure(cs.log, "set course status", internal("update status", err))
	}
	course.Status = status
	cs.log.Info("course status changed", "course_id", course.ID, "status", status)
	return course, nil
}

func (cs *courseService) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	course, err := cs.getCourse(ctx, courseID)
	if err != nil {
		return logFailure(cs.log, "delete course", err)
	}
	if err := cs.courseRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{course.ID}); err != nil {
		return logFailure(cs.log, "delete course", internal("delete course", err))
	}
	cs.log.Info("course deleted", "course_id", course.ID)
	return nil
}

func (cs *courseService) getCourse(ctx context.Context, courseID uuid.UUID) (*types.Course, error) {
	rows, err := cs.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{courseID})
	if err != nil {
		return nil, internal("load course", err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound(MsgCourseNotFound)
	}
	return rows[0], nil
}

func (cs *courseService) attachTrainers(ctx context.Context, courses []*types.Course) error {
	if len(courses) == 0 {
		return nil
	}
	seen := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0, len(courses))
	for _, c := range courses {
		if !seen[c.TrainerID] {
			seen[c.TrainerID] = true
			ids = append(ids, c.TrainerID)
		}
	}
	trainers, err := cs.userRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return internal("load trainers", err)
	}
	byID := make(map[uuid.UUID]*types.TrainerSummary, len(trainers))
	for _, u := range trainers {
		byID[u.ID] = &types.TrainerSummary{ID: u.ID, Email: u.Email, Role: u.Role}
	}
	for _, c := range courses {
		c.Trainer = byID[c.TrainerID]
	}
	return nil
}

// stringList trims entries, drops blanks and never returns nil so the column
// always holds a JSON array.
func stringList(in []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
