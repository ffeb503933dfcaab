package learning

import (
	"context"
	"strings"

	"github.com/google/uuid"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"gorm.io/gorm"
)

// CourseQuery scopes a course listing. Empty string filters are ignored;
// enum filters are compared as given, so callers normalize them first.
type CourseQuery struct {
	OrganizationID *uuid.UUID
	Status         string
	Category       string
	Difficulty     string
	Search         string
}

type CourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.Course, error)
	ListActive(ctx context.Context, tx *gorm.DB, q CourseQuery) ([]*types.Course, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, updates map[string]any) error
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) error
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{db: db, log: repoLog}
}

func (r *courseRepo) Create(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(courses) == 0 {
		return []*types.Course{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByIDs ignores the active flag: soft-deleted courses stay addressable.
func (r *courseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Course
	if len(courseIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", courseIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) ListActive(ctx context.Context, tx *gorm.DB, q CourseQuery) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Course{}).
		Where("is_active = ?", true)

	if q.OrganizationID == nil {
		query = query.Where("organization_id IS NULL")
	} else {
		query = query.Where("organization_id = ?", *q.OrganizationID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.Difficulty != "" {
		query = query.Where("difficulty = ?", q.Difficulty)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where(
			`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`,
			like, like,
		)
	}

	var results []*types.Course
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) UpdateFields(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, updates map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Course{}).
		Where("id = ?", courseID).
		Updates(updates).Error
}

// SoftDeleteByIDs flips is_active off. Modules and lessons are left alone.
func (r *courseRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(courseIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Course{}).
		Where("id IN ?", courseIDs).
		Update("is_active", false).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
