package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/authz"
	"github.com/yungbote/neurobridge-lms/internal/data/repos"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"github.com/yungbote/neurobridge-lms/internal/platform/normalization"
	"github.com/yungbote/neurobridge-lms/internal/platform/pointers"
)

const MsgUserNotFound = "User not found"

type UserUpdate struct {
	Name           *string      `json:"name" validate:"omitnil,notblank"`
	Role           *string      `json:"role" validate:"omitnil,user_role"`
	OrganizationID OptionalUUID `json:"organizationId"`
	IsActive       *bool        `json:"isActive"`
}

type UserService interface {
	ListUsers(ctx context.Context) ([]types.PublicUser, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, upd UserUpdate) (*types.PublicUser, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	orgRepo  repos.OrganizationRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, orgRepo repos.OrganizationRepo) UserService {
	return &userService{
		db:       db,
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
		orgRepo:  orgRepo,
	}
}

// ListUsers returns the caller's organization; a SUPER_ADMIN sees everyone.
func (us *userService) ListUsers(ctx context.Context) ([]types.PublicUser, error) {
	rd := ctxutil.GetRequestData(ctx)
	if err := authz.Authorize(rd, authz.UserList); err != nil {
		return nil, logFailure(us.log, "list users", err)
	}

	var (
		rows []*types.User
		err  error
	)
	if rd.Role == user.RoleSuperAdmin {
		rows, err = us.userRepo.ListAll(ctx, nil)
	} else {
		rows, err = us.userRepo.ListByOrganizationID(ctx, nil, rd.OrganizationID)
	}
	if err != nil {
		return nil, logFailure(us.log, "list users", internal("list users", err))
	}
	out := make([]types.PublicUser, 0, len(rows))
	for _, u := range rows {
		out = append(out, u.Public())
	}
	return out, nil
}

// UpdateUser lets an ADMIN manage users of its own organization. Only a
// SUPER_ADMIN may cross organizations or grant SUPER_ADMIN.
func (us *userService) UpdateUser(ctx context.Context, userID uuid.UUID, upd UserUpdate) (*types.PublicUser, error) {
	rd := ctxutil.GetRequestData(ctx)
	if err := authz.Authorize(rd, authz.UserUpdate); err != nil {
		return nil, logFailure(us.log, "update user", err)
	}

	rows, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, logFailure(us.log, "update user", internal("load user", err))
	}
	if len(rows) == 0 {
		return nil, logFailure(us.log, "update user", apierr.NotFound(MsgUserNotFound))
	}
	target := rows[0]

	superAdmin := rd.Role == user.RoleSuperAdmin
	if !superAdmin && !pointers.UUIDEqual(target.OrganizationID, rd.OrganizationID) {
		return nil, logFailure(us.log, "update user", apierr.Forbidden(authz.MsgForbidden))
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		upd.Name = &name
	}
	upd.Role = normalization.ParseEnumPtr(upd.Role)
	if err := validateInput(upd); err != nil {
		return nil, logFailure(us.log, "update user", err)
	}
	if upd.Role != nil && *upd.Role == user.RoleSuperAdmin && !superAdmin {
		return nil, logFailure(us.log, "update user", apierr.Forbidden(authz.MsgForbidden))
	}

	updates := map[string]any{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Role != nil {
		updates["role"] = *upd.Role
	}
	if upd.IsActive != nil {
		updates["is_active"] = *upd.IsActive
	}
	if upd.OrganizationID.Set {
		if !superAdmin && !pointers.UUIDEqual(upd.OrganizationID.Value, rd.OrganizationID) {
			return nil, logFailure(us.log, "update user", apierr.Forbidden(authz.MsgForbidden))
		}
		if upd.OrganizationID.Value != nil {
			orgs, err := us.orgRepo.GetByIDs(ctx, nil, []uuid.UUID{*upd.OrganizationID.Value})
			if err != nil {
				return nil, logFailure(us.log, "update user", internal("load organization", err))
			}
			if len(orgs) == 0 {
				return nil, logFailure(us.log, "update user", apierr.Validation("Organization does not exist"))
			}
			updates["organization_id"] = *upd.OrganizationID.Value
		} else {
			updates["organization_id"] = nil
		}
	}

	if err := us.userRepo.UpdateFields(ctx, nil, target.ID, updates); err != nil {
		return nil, logFailure(us.log, "update user", internal("update user", err))
	}
	rows, err = us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{target.ID})
	if err != nil {
		return nil, logFailure(us.log, "update user", internal("reload user", err))
	}
	if len(rows) == 0 {
		return nil, logFailure(us.log, "update user", apierr.NotFound(MsgUserNotFound))
	}
	us.log.Info("user updated", "target_user_id", target.ID, "fields", len(updates))
	pub := rows[0].Public()
	return &pub, nil
}
