package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/data/repos"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

const (
	MsgPolicyExists   = "Learning policy already exists"
	MsgPolicyNotFound = "Learning policy not found"
)

type LearningPolicyInput struct {
	OrganizationID             uuid.UUID `json:"organizationId" validate:"required"`
	CourseCompletionPercentage *int      `json:"courseCompletionPercentage" validate:"omitnil,gte=0,lte=100"`
	AssessmentPassPercentage   *int      `json:"assessmentPassPercentage" validate:"omitnil,gte=0,lte=100"`
	CertificationEnabled       *bool     `json:"certificationEnabled"`
}

type LearningPolicyUpdate struct {
	CourseCompletionPercentage *int  `json:"courseCompletionPercentage" validate:"omitnil,gte=0,lte=100"`
	AssessmentPassPercentage   *int  `json:"assessmentPassPercentage" validate:"omitnil,gte=0,lte=100"`
	CertificationEnabled       *bool `json:"certificationEnabled"`
}

type LearningPolicyService interface {
	CreatePolicy(ctx context.Context, in LearningPolicyInput) (*types.LearningPolicy, error)
	GetPolicy(ctx context.Context, orgID uuid.UUID) (*types.LearningPolicy, error)
	UpdatePolicy(ctx context.Context, orgID uuid.UUID, upd LearningPolicyUpdate) (*types.LearningPolicy, error)
}

type learningPolicyService struct {
	db         *gorm.DB
	log        *logger.Logger
	orgRepo    repos.OrganizationRepo
	policyRepo repos.LearningPolicyRepo
}

func NewLearningPolicyService(db *gorm.DB, baseLog *logger.Logger, orgRepo repos.OrganizationRepo, policyRepo repos.LearningPolicyRepo) LearningPolicyService {
	return &learningPolicyService{
		db:         db,
		log:        baseLog.With("service", "LearningPolicyService"),
		orgRepo:    orgRepo,
		policyRepo: policyRepo,
	}
}

func (ps *learningPolicyService) CreatePolicy(ctx context.Context, in LearningPolicyInput) (*types.LearningPolicy, error) {
	if err := validateInput(in); err != nil {
		return nil, logFailure(ps.log, "create policy", err)
	}
	if err := ps.requireOrganization(ctx, nil, in.OrganizationID); err != nil {
		return nil, logFailure(ps.log, "create policy", err)
	}

	existing, err := ps.policyRepo.GetByOrganizationIDs(ctx, nil, []uuid.UUID{in.OrganizationID})
	if err != nil {
		return nil, logFailure(ps.log, "create policy", internal("load policy", err))
	}
	if len(existing) > 0 {
		return nil, logFailure(ps.log, "create policy", apierr.Conflict(MsgPolicyExists))
	}

	p := types.NewLearningPolicy(in.OrganizationID)
	applyPolicyFields(p, in.CourseCompletionPercentage, in.AssessmentPassPercentage, in.CertificationEnabled)
	if _, err := ps.policyRepo.Create(ctx, nil, []*types.LearningPolicy{p}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, logFailure(ps.log, "create policy", apierr.Conflict(MsgPolicyExists))
		}
		return nil, logFailure(ps.log, "create policy", internal("create policy", err))
	}
	ps.log.Info("learning policy created", "organization_id", in.OrganizationID)
	return p, nil
}

func (ps *learningPolicyService) GetPolicy(ctx context.Context, orgID uuid.UUID) (*types.LearningPolicy, error) {
	rows, err := ps.policyRepo.GetByOrganizationIDs(ctx, nil, []uuid.UUID{orgID})
	if err != nil {
		return nil, logFailure(ps.log, "get policy", internal("load policy", err))
	}
	if len(rows) == 0 {
		return nil, logFailure(ps.log, "get policy", apierr.NotFound(MsgPolicyNotFound))
	}
	return rows[0], nil
}

// UpdatePolicy creates the organization's policy from defaults when it has
// none yet, then applies upd.
func (ps *learningPolicyService) UpdatePolicy(ctx context.Context, orgID uuid.UUID, upd LearningPolicyUpdate) (*types.LearningPolicy, error) {
	if err := validateInput(upd); err != nil {
		return nil, logFailure(ps.log, "update policy", err)
	}

	var out *types.LearningPolicy
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ps.requireOrganization(ctx, tx, orgID); err != nil {
			return err
		}
		rows, err := ps.policyRepo.GetByOrganizationIDs(ctx, tx, []uuid.UUID{orgID})
		if err != nil {
			return internal("load policy", err)
		}
		if len(rows) == 0 {
			p := types.NewLearningPolicy(orgID)
			applyPolicyFields(p, upd.CourseCompletionPercentage, upd.AssessmentPassPercentage, upd.CertificationEnabled)
			if _, err := ps.policyRepo.Create(ctx, tx, []*types.LearningPolicy{p}); err != nil {
				return internal("create policy", err)
			}
			out = p
			return nil
		}

		updates := map[string]any{}
		if upd.CourseCompletionPercentage != nil {
			updates["course_completion_percentage"] = *upd.CourseCompletionPercentage
		}
		if upd.AssessmentPassPercentage != nil {
			updates["assessment_pass_percentage"] = *upd.AssessmentPassPercentage
		}
		if upd.CertificationEnabled != nil {
			updates["certification_enabled"] = *upd.CertificationEnabled
		}
		if err := ps.policyRepo.UpdateFieldsByOrganizationID(ctx, tx, orgID, updates); err != nil {
			return internal("update policy", err)
		}
		rows, err = ps.policyRepo.GetByOrganizationIDs(ctx, tx, []uuid.UUID{orgID})
		if err != nil {
			return internal("reload policy", err)
		}
		out = rows[0]
		return nil
	})
	if err != nil {
		return nil, logFailure(ps.log, "update policy", err)
	}
	return out, nil
}

func (ps *learningPolicyService) requireOrganization(ctx context.Context, tx *gorm.DB, orgID uuid.UUID) error {
	orgs, err := ps.orgRepo.GetByIDs(ctx, tx, []uuid.UUID{orgID})
	if err != nil {
		return internal("load organization", err)
	}
	if len(orgs) == 0 {
		return apierr.NotFound(MsgOrganizationNotFound)
	}
	return nil
}

func applyPolicyFields(p *types.LearningPolicy, completion, pass *int, certification *bool) {
	if completion != nil {
		p.CourseCompletionPercentage = *completion
	}
	if pass != nil {
		p.AssessmentPassPercentage = *pass
	}
	if certification != nil {
		p.CertificationEnabled = *certification
	}
}
