package org

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"gorm.io/gorm"
)

type LearningPolicyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, policies []*types.LearningPolicy) ([]*types.LearningPolicy, error)
	GetByOrganizationIDs(ctx context.Context, tx *gorm.DB, orgIDs []uuid.UUID) ([]*types.LearningPolicy, error)
	UpdateFieldsByOrganizationID(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, updates map[string]any) error
}

type learningPolicyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPolicyRepo(db *gorm.DB, baseLog *logger.Logger) LearningPolicyRepo {
	repoLog := baseLog.With("repo", "LearningPolicyRepo")
	return &learningPolicyRepo{db: db, log: repoLog}
}

func (r *learningPolicyRepo) Create(ctx context.Context, tx *gorm.DB, policies []*types.LearningPolicy) ([]*types.LearningPolicy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(policies) == 0 {
		return []*types.LearningPolicy{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *learningPolicyRepo) GetByOrganizationIDs(ctx context.Context, tx *gorm.DB, orgIDs []uuid.UUID) ([]*types.LearningPolicy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.LearningPolicy
	if len(orgIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("organization_id IN ?", orgIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *learningPolicyRepo) UpdateFieldsByOrganizationID(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, updates map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.LearningPolicy{}).
		Where("organization_id = ?", orgID).
		Updates(updates).Error
}
