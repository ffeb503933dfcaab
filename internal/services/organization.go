package services

import (
	"context"
	"errors"
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
	MsgOrganizationNameRequired = "Organization name is required"
	MsgOrganizationExists       = "Organization already exists"
	MsgOrganizationNotFound     = "Organization not found"
)

type CreateOrganizationInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	Timezone     string `json:"timezone"`
	Language     string `json:"language"`
	LogoURL      string `json:"logoUrl"`
	ThemeColor   string `json:"themeColor" validate:"omitempty,hexcolor"`
}

type OrganizationUpdate struct {
	Name         *string `json:"name" validate:"omitnil,notblank"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Timezone     *string `json:"timezone" validate:"omitnil,notblank"`
	Language     *string `json:"language" validate:"omitnil,notblank"`
	LogoURL      *string `json:"logoUrl"`
	ThemeColor   *string `json:"themeColor" validate:"omitnil,hexcolor"`
	IsActive     *bool   `json:"isActive"`
}

type OrganizationService interface {
	CreateOrganization(ctx context.Context, in CreateOrganizationInput) (*types.Organization, error)
	GetOrganization(ctx context.Context, orgID uuid.UUID) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, orgID uuid.UUID, upd OrganizationUpdate) (*types.Organization, error)
}

type organizationService struct {
	db      *gorm.DB
	log     *logger.Logger
	orgRepo repos.OrganizationRepo
}

func NewOrganizationService(db *gorm.DB, baseLog *logger.Logger, orgRepo repos.OrganizationRepo) OrganizationService {
	return &organizationService{
		db:      db,
		log:     baseLog.With("service", "OrganizationService"),
		orgRepo: orgRepo,
	}
}

func (ogs *organizationService) CreateOrganization(ctx context.Context, in CreateOrganizationInput) (*types.Organization, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactEmail = normalization.ParseInputString(in.ContactEmail)
	in.ThemeColor = strings.TrimSpace(in.ThemeColor)
	if in.Name == "" {
		return nil, logFailure(ogs.log, "create organization", apierr.Validation(MsgOrganizationNameRequired))
	}
	if err := validateInput(in); err != nil {
		return nil, logFailure(ogs.log, "create organization", err)
	}

	exists, err := ogs.orgRepo.NameExists(ctx, nil, in.Name, uuid.Nil)
	if err != nil {
		return nil, logFailure(ogs.log, "create organization", internal("check name", err))
	}
	if exists {
		return nil, logFailure(ogs.log, "create organization", apierr.Conflict(MsgOrganizationExists))
	}

	o := &types.Organization{
		Name:         in.Name,
		Description:  strings.TrimSpace(in.Description),
		Address:      strings.TrimSpace(in.Address),
		ContactEmail: in.ContactEmail,
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		Timezone:     strings.TrimSpace(in.Timezone),
		Language:     strings.TrimSpace(in.Language),
		LogoURL:      strings.TrimSpace(in.LogoURL),
		ThemeColor:   in.ThemeColor,
		Active:       true,
	}
	if _, err := ogs.orgRepo.Create(ctx, nil, []*types.Organization{o}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, logFailure(ogs.log, "create organization", apierr.Conflict(MsgOrganizationExists))
		}
		return nil, logFailure(ogs.log, "create organization", internal("create organization", err))
	}
	ogs.log.Info("organization created", "organization_id", o.ID)
	return o, nil
}

func (ogs *organizationService) GetOrganization(ctx context.Context, orgID uuid.UUID) (*types.Organization, error) {
	o, err := ogs.getOrganization(ctx, orgID)
	if err != nil {
		return nil, logFailure(ogs.log, "get organization", err)
	}
	return o, nil
}

func (ogs *organizationService) UpdateOrganization(ctx context.Context, orgID uuid.UUID, upd OrganizationUpdate) (*types.Organization, error) {
	o, err := ogs.getOrganization(ctx, orgID)
	if err != nil {
		return nil, logFailure(ogs.log, "update organization", err)
	}

	upd.Name = normalization.TrimPtr(upd.Name)
	upd.Timezone = normalization.TrimPtr(upd.Timezone)
	upd.Language = normalization.TrimPtr(upd.Language)
	upd.ThemeColor = normalization.TrimPtr(upd.ThemeColor)
	if upd.ContactEmail != nil {
		email := normalization.ParseInputString(*upd.ContactEmail)
		upd.ContactEmail = &email
	}
	if err := validateInput(upd); err != nil {
		return nil, logFailure(ogs.log, "update organization", err)
	}
	if upd.ContactEmail != nil && *upd.ContactEmail != "" {
		if err := structValidator().Var(*upd.ContactEmail, "email"); err != nil {
			return nil, logFailure(ogs.log, "update organization", apierr.Validation("contactEmail must be a valid email"))
		}
	}

	updates := map[string]any{}
	if upd.Name != nil && *upd.Name != o.Name {
		exists, err := ogs.orgRepo.NameExists(ctx, nil, *upd.Name, o.ID)
		if err != nil {
			return nil, logFailure(ogs.log, "update organization", internal("check name", err))
		}
		if exists {
			return nil, logFailure(ogs.log, "update organization", apierr.Conflict(MsgOrganizationExists))
		}
		updates["name"] = *upd.Name
	}
	setIfPresent(updates, "description", normalization.TrimPtr(upd.Description))
	setIfPresent(updates, "address", normalization.TrimPtr(upd.Address))
	setIfPresent(updates, "contact_email", upd.ContactEmail)
	setIfPresent(updates, "contact_phone", normalization.TrimPtr(upd.ContactPhone))
	setIfPresent(updates, "timezone", upd.Timezone)
	setIfPresent(updates, "language", upd.Language)
	setIfPresent(updates, "logo_url", normalization.TrimPtr(upd.LogoURL))
	setIfPresent(updates, "theme_color", upd.ThemeColor)
	if upd.IsActive != nil {
		updates["is_active"] = *upd.IsActive
	}

	if err := ogs.orgRepo.UpdateFields(ctx, nil, o.ID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, logFailure(ogs.log, "update organization", apierr.Conflict(MsgOrganizationExists))
		}
		return nil, logFailure(ogs.log, "update organization", internal("update organization", err))
	}
	updated, err := ogs.getOrganization(ctx, o.ID)
	if err != nil {
		return nil, logFailure(ogs.log, "update organization", err)
	}
	return updated, nil
}

func (ogs *organizationService) getOrganization(ctx context.Context, orgID uuid.UUID) (*types.Organization, error) {
	rows, err := ogs.orgRepo.GetByIDs(ctx, nil, []uuid.UUID{orgID})
	if err != nil {
		return nil, internal("load organization", err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound(MsgOrganizationNotFound)
	}
	return rows[0], nil
}

func setIfPresent(updates map[string]any, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}
