package learning

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"gorm.io/gorm"
)

// Display order within a course; ties keep insertion order.
const moduleDisplayOrder = "course_id, sort_order ASC, created_at ASC, id ASC"

type CourseModuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, modules []*types.CourseModule) ([]*types.CourseModule, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uuid.UUID) ([]*types.CourseModule, error)
	GetActiveByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.CourseModule, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, updates map[string]any) error
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uuid.UUID) error
}

type courseModuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseModuleRepo(db *gorm.DB, baseLog *logger.Logger) CourseModuleRepo {
	repoLog := baseLog.With("repo", "CourseModuleRepo")
	return &courseModuleRepo{db: db, log: repoLog}
}

func (r *courseModuleRepo) Create(ctx context.Context, tx *gorm.DB, modules []*types.CourseModule) ([]*types.CourseModule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(modules) == 0 {
		return []*types.CourseModule{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *courseModuleRepo) GetByIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uuid.UUID) ([]*types.CourseModule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CourseModule
	if len(moduleIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", moduleIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseModuleRepo) GetActiveByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.CourseModule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CourseModule
	if len(courseIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("course_id IN ? AND is_active = ?", courseIDs, true).
		Order(moduleDisplayOrder).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseModuleRepo) UpdateFields(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, updates map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.CourseModule{}).
		Where("id = ?", moduleID).
		Updates(updates).Error
}

func (r *courseModuleRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(moduleIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.CourseModule{}).
		Where("id IN ?", moduleIDs).
		Update("is_active", false).Error
}
