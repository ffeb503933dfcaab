package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/neurobridge-lms/internal/authz"
	"github.com/yungbote/neurobridge-lms/internal/data/repos/testutil"
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
	"github.com/yungbote/neurobridge-lms/internal/platform/pointers"
)

func TestUserServiceList(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.db, env.log, env.users, env.orgs)
	bg := context.Background()

	acme := testutil.SeedOrganization(t, bg, env.db, "Acme")
	admin := testutil.SeedUser(t, bg, env.db, "admin@acme.test", user.RoleAdmin, &acme.ID)
	testutil.SeedUser(t, bg, env.db, "learner@acme.test", user.RoleLearner, &acme.ID)
	testutil.SeedUser(t, bg, env.db, "solo@example.com", user.RoleLearner, nil)

	rows, err := svc.ListUsers(asCaller(admin.ID, admin.Role, &acme.ID))
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(rows) != 2 || rows[0].Email != "admin@acme.test" {
		t.Fatalf("ListUsers (admin): unexpected rows %+v", rows)
	}

	all, err := svc.ListUsers(asCaller(uuid.New(), user.RoleSuperAdmin, nil))
	if err != nil || len(all) != 3 {
		t.Fatalf("ListUsers (super admin): err=%v len=%d", err, len(all))
	}

	_, err = svc.ListUsers(asCaller(uuid.New(), user.RoleTrainer, &acme.ID))
	expectAPIError(t, err, http.StatusForbidden, authz.MsgAdminOnly)
}

func TestUserServiceUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.db, env.log, env.users, env.orgs)
	bg := context.Background()

	acme := testutil.SeedOrganization(t, bg, env.db, "Acme")
	globex := testutil.SeedOrganization(t, bg, env.db, "Globex")
	admin := testutil.SeedUser(t, bg, env.db, "admin@acme.test", user.RoleAdmin, &acme.ID)
	learner := testutil.SeedUser(t, bg, env.db, "learner@acme.test", user.RoleLearner, &acme.ID)
	outsider := testutil.SeedUser(t, bg, env.db, "x@globex.test", user.RoleLearner, &globex.ID)
	adminCtx := asCaller(admin.ID, admin.Role, &acme.ID)

	promoted, err := svc.UpdateUser(adminCtx, learner.ID, UserUpdate{Role: pointers.String("trainer"), IsActive: pointers.Bool(false)})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if promoted.Role != user.RoleTrainer || promoted.Active {
		t.Fatalf("UpdateUser: unexpected user %+v", promoted)
	}

	_, err = svc.UpdateUser(adminCtx, outsider.ID, UserUpdate{Name: pointers.String("nope")})
	expectAPIError(t, err, http.StatusForbidden, authz.MsgForbidden)

	_, err = svc.UpdateUser(adminCtx, learner.ID, UserUpdate{Role: pointers.String("SUPER_ADMIN")})
	expectAPIError(t, err, http.StatusForbidden, authz.MsgForbidden)

	_, err = svc.UpdateUser(adminCtx, learner.ID, UserUpdate{Role: pointers.String("OWNER")})
	expectAPIError(t, err, http.StatusBadRequest, "")

	_, err = svc.UpdateUser(adminCtx, uuid.New(), UserUpdate{})
	expectAPIError(t, err, http.StatusNotFound, MsgUserNotFound)

	var move UserUpdate
	if err := json.Unmarshal([]byte(`{"organizationId": "`+globex.ID.String()+`"}`), &move); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	superCtx := asCaller(uuid.New(), user.RoleSuperAdmin, nil)
	moved, err := svc.UpdateUser(superCtx, learner.ID, move)
	if err != nil {
		t.Fatalf("UpdateUser (move): %v", err)
	}
	if moved.OrganizationID == nil || *moved.OrganizationID != globex.ID {
		t.Fatalf("UpdateUser (move): organization=%v", moved.OrganizationID)
	}

	var detach UserUpdate
	if err := json.Unmarshal([]byte(`{"organizationId": null}`), &detach); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	detached, err := svc.UpdateUser(superCtx, learner.ID, detach)
	if err != nil {
		t.Fatalf("UpdateUser (detach): %v", err)
	}
	if detached.OrganizationID != nil {
		t.Fatalf("UpdateUser (detach): organization should be cleared")
	}

	var missing UserUpdate
	if err := json.Unmarshal([]byte(`{"organizationId": "`+uuid.NewString()+`"}`), &missing); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	_, err = svc.UpdateUser(superCtx, learner.ID, missing)
	expectAPIError(t, err, http.StatusBadRequest, "Organization does not exist")
}
