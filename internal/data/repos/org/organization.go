package org

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"gorm.io/gorm"
)

type OrganizationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orgs []*types.Organization) ([]*types.Organization, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, orgIDs []uuid.UUID) ([]*types.Organization, error)
	// NameExists reports whether another organization already uses name,
	// ignoring case.
	// excludeID (may be uuid.Nil) is ignored so an org can keep its own name.
	NameExists(ctx context.Context, tx *gorm.DB, name string, excludeID uuid.UUID) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, updates map[string]any) error
}

type organizationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrganizationRepo(db *gorm.DB, baseLog *logger.Logger) OrganizationRepo {
	repoLog := baseLog.With("repo", "OrganizationRepo")
	return &organizationRepo{db: db, log: repoLog}
}

func (r *organizationRepo) Create(ctx context.Context, tx *gorm.DB, orgs []*types.Organization) ([]*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(orgs) == 0 {
		return []*types.Organization{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepo) GetByIDs(ctx context.Context, tx *gorm.DB, orgIDs []uuid.UUID) ([]*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Organization
	if len(orgIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", orgIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *organizationRepo) NameExists(ctx context.Context, tx *gorm.DB, name string, excludeID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).
		Model(&types.Organization{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *organizationRepo) UpdateFields(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, updates map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Organization{}).
		Where("id = ?", orgID).
		Updates(updates).Error
}
