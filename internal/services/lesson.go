package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/data/repos"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/domain/learning"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"github.com/yungbote/neurobridge-lms/internal/platform/normalization"
)

const (
	MsgLessonRequired = "Title and content type are required"
	MsgLessonNotFound = "Lesson not found"
)

type CreateLessonInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"contentType"`
	ContentURL  string `json:"contentUrl"`
	TextContent string `json:"textContent"`
	Duration    int    `json:"duration"`
	Order       int    `json:"order"`
	IsPreview   bool   `json:"isPreview"`
}

type LessonUpdate struct {
	Title       *string `json:"title" validate:"omitnil,notblank"`
	Description *string `json:"description"`
	ContentType *string `json:"contentType" validate:"omitnil,content_type"`
	ContentURL  *string `json:"contentUrl"`
	TextContent *string `json:"textContent"`
	Duration    *int    `json:"duration" validate:"omitnil,gte=0"`
	Order       *int    `json:"order"`
	IsPreview   *bool   `json:"isPreview"`
}

type LessonService interface {
	CreateLesson(ctx context.Context, moduleID uuid.UUID, in CreateLessonInput) (*types.Lesson, error)
	GetLesson(ctx context.Context, lessonID uuid.UUID) (*types.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID uuid.UUID, upd LessonUpdate) (*types.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID uuid.UUID) error
}

type lessonService struct {
	db         *gorm.DB
	log        *logger.Logger
	moduleRepo repos.CourseModuleRepo
	lessonRepo repos.LessonRepo
}

func NewLessonService(db *gorm.DB, baseLog *logger.Logger, moduleRepo repos.CourseModuleRepo, lessonRepo repos.LessonRepo) LessonService {
	return &lessonService{
		db:         db,
		log:        baseLog.With("service", "LessonService"),
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
	}
}

func (ls *lessonService) CreateLesson(ctx context.Context, moduleID uuid.UUID, in CreateLessonInput) (*types.Lesson, error) {
	title := strings.TrimSpace(in.Title)
	contentType := normalization.ParseEnum(in.ContentType)
	if title == "" || contentType == "" {
		return nil, logFailure(ls.log, "create lesson", apierr.Validation(MsgLessonRequired))
	}
	if !learning.IsValidContentType(contentType) {
		return nil, logFailure(ls.log, "create lesson", apierr.Validation("Invalid content type: "+in.ContentType))
	}
	if in.Duration < 0 {
		return nil, logFailure(ls.log, "create lesson", apierr.Validation("duration must be at least 0"))
	}

	modules, err := ls.moduleRepo.GetByIDs(ctx, nil, []uuid.UUID{moduleID})
	if err != nil {
		return nil, logFailure(ls.log, "create lesson", internal("load module", err))
	}
	if len(modules) == 0 {
		return nil, logFailure(ls.log, "create lesson", apierr.NotFound(MsgModuleNotFound))
	}

	l := &types.Lesson{
		ModuleID:    moduleID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		ContentType: contentType,
		ContentURL:  strings.TrimSpace(in.ContentURL),
		TextContent: in.TextContent,
		Duration:    in.Duration,
		Order:       in.Order,
		Preview:     in.IsPreview,
		Active:      true,
	}
	if _, err := ls.lessonRepo.Create(ctx, nil, []*types.Lesson{l}); err != nil {
		return nil, logFailure(ls.log, "create lesson", internal("create lesson", err))
	}
	ls.log.Info("lesson created", "lesson_id", l.ID, "module_id", moduleID)
	return l, nil
}

func (ls *lessonService) GetLesson(ctx context.Context, lessonID uuid.UUID) (*types.Lesson, error) {
	l, err := ls.getLesson(ctx, lessonID)
	if err != nil {
		return nil, logFailure(ls.log, "get lesson", err)
	}
	return l, nil
}

func (ls *lessonService) UpdateLesson(ctx context.Context, lessonID uuid.UUID, upd LessonUpdate) (*types.Lesson, error) {
	l, err := ls.getLesson(ctx, lessonID)
	if err != nil {
		return nil, logFailure(ls.log, "update lesson", err)
	}

	upd.Title = normalization.TrimPtr(upd.Title)
	upd.Description = normalization.TrimPtr(upd.Description)
	upd.ContentURL = normalization.TrimPtr(upd.ContentURL)
	upd.ContentType = normalization.ParseEnumPtr(upd.ContentType)
	if err := validateInput(upd); err != nil {
		return nil, logFailure(ls.log, "update lesson", err)
	}

	updates := map[string]any{}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.ContentType != nil {
		updates["content_type"] = *upd.ContentType
	}
	if upd.ContentURL != nil {
		updates["content_url"] = *upd.ContentURL
	}
	if upd.TextContent != nil {
		updates["text_content"] = *upd.TextContent
	}
	if upd.Duration != nil {
		updates["duration"] = *upd.Duration
	}
	if upd.Order != nil {
		updates["sort_order"] = *upd.Order
	}
	if upd.IsPreview != nil {
		updates["is_preview"] = *upd.IsPreview
	}
	if err := ls.lessonRepo.UpdateFields(ctx, nil, l.ID, updates); err != nil {
		return nil, logFailure(ls.log, "update lesson", internal("update lesson", err))
	}
	updated, err := ls.getLesson(ctx, l.ID)
	if err != nil {
		return nil, logFailure(ls.log, "update lesson", err)
	}
	return updated, nil
}

func (ls *lessonService) DeleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	l, err := ls.getLesson(ctx, lessonID)
	if err != nil {
		return logFailure(ls.log, "delete lesson", err)
	}
	if err := ls.lessonRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{l.ID}); err != nil {
		return logFailure(ls.log, "delete lesson", internal("delete lesson", err))
	}
	ls.log.Info("lesson deleted", "lesson_id", l.ID)
	return nil
}

func (ls *lessonService) getLesson(ctx context.Context, lessonID uuid.UUID) (*types.Lesson, error) {
	rows, err := ls.lessonRepo.GetByIDs(ctx, nil, []uuid.UUID{lessonID})
	if err != nil {
		return nil, internal("load lesson", err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound(MsgLessonNotFound)
	}
	return rows[0], nil
}
