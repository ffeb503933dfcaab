package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/data/repos"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"github.com/yungbote/neurobridge-lms/internal/platform/normalization"
)

const (
	MsgModuleTitleRequired = "Module title is required"
	MsgModuleNotFound      = "Module not found"
)

type CreateModuleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Duration    int    `json:"duration"`
}

type ModuleUpdate struct {
	Title       *string `json:"title" validate:"omitnil,notblank"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	Duration    *int    `json:"duration" validate:"omitnil,gte=0"`
}

type ModuleService interface {
	CreateModule(ctx context.Context, courseID uuid.UUID, in CreateModuleInput) (*types.CourseModule, error)
	GetModule(ctx context.Context, moduleID uuid.UUID) (*types.CourseModule, error)
	UpdateModule(ctx context.Context, moduleID uuid.UUID, upd ModuleUpdate) (*types.CourseModule, error)
	DeleteModule(ctx context.Context, moduleID uuid.UUID) error
}

type moduleService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
	moduleRepo repos.CourseModuleRepo
}

func NewModuleService(db *gorm.DB, baseLog *logger.Logger, courseRepo repos.CourseRepo, moduleRepo repos.CourseModuleRepo) ModuleService {
	return &moduleService{
		db:         db,
		log:        baseLog.With("service", "ModuleService"),
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
	}
}

func (ms *moduleService) CreateModule(ctx context.Context, courseID uuid.UUID, in CreateModuleInput) (*types.CourseModule, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, logFailure(ms.log, "create module", apierr.Validation(MsgModuleTitleRequired))
	}
	if in.Duration < 0 {
		return nil, logFailure(ms.log, "create module", apierr.Validation("duration must be at least 0"))
	}

	courses, err := ms.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{courseID})
	if err != nil {
		return nil, logFailure(ms.log, "create module", internal("load course", err))
	}
	if len(courses) == 0 {
		return nil, logFailure(ms.log, "create module", apierr.NotFound(MsgCourseNotFound))
	}

	m := &types.CourseModule{
		CourseID:    courseID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Order:       in.Order,
		Duration:    in.Duration,
		Active:      true,
	}
	if _, err := ms.moduleRepo.Create(ctx, nil, []*types.CourseModule{m}); err != nil {
		return nil, logFailure(ms.log, "create module", internal("create module", err))
	}
	ms.log.Info("module created", "module_id", m.ID, "course_id", courseID)
	return m, nil
}

func (ms *moduleService) GetModule(ctx context.Context, moduleID uuid.UUID) (*types.CourseModule, error) {
	m, err := ms.getModule(ctx, moduleID)
	if err != nil {
		return nil, logFailure(ms.log, "get module", err)
	}
	return m, nil
}

func (ms *moduleService) UpdateModule(ctx context.Context, moduleID uuid.UUID, upd ModuleUpdate) (*types.CourseModule, error) {
	m, err := ms.getModule(ctx, moduleID)
	if err != nil {
		return nil, logFailure(ms.log, "update module", err)
	}

	upd.Title = normalization.TrimPtr(upd.Title)
	upd.Description = normalization.TrimPtr(upd.Description)
	if err := validateInput(upd); err != nil {
		return nil, logFailure(ms.log, "update module", err)
	}

	updates := map[string]any{}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Order != nil {
		updates["sort_order"] = *upd.Order
	}
	if upd.Duration != nil {
		updates["duration"] = *upd.Duration
	}
	if err := ms.moduleRepo.UpdateFields(ctx, nil, m.ID, updates); err != nil {
		return nil, logFailure(ms.log, "update module", internal("update module", err))
	}
	updated, err := ms.getModule(ctx, m.ID)
	if err != nil {
		return nil, logFailure(ms.log, "update module", err)
	}
	return updated, nil
}

func (ms *moduleService) DeleteModule(ctx context.Context, moduleID uuid.UUID) error {
	m, err := ms.getModule(ctx, moduleID)
	if err != nil {
		return logFailure(ms.log, "delete module", err)
	}
	if err := ms.moduleRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{m.ID}); err != nil {
		return logFailure(ms.log, "delete module", internal("delete module", err))
	}
	ms.log.Info("module deleted", "module_id", m.ID)
	return nil
}

func (ms *moduleService) getModule(ctx context.Context, moduleID uuid.UUID) (*types.CourseModule, error) {
	rows, err := ms.moduleRepo.GetByIDs(ctx, nil, []uuid.UUID{moduleID})
	if err != nil {
		return nil, internal("load module", err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound(MsgModuleNotFound)
	}
	return rows[0], nil
}
