package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/neurobridge-lms/internal/data/repos/testutil"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"gorm.io/gorm"
)

func TestUserRepo(t *testing.T) {
	tx := testutil.DB(t)

	repo := NewUserRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.User{
		{
			Email:    "userrepo@example.com",
			Password: "pw",
			Name:     "A B",
			Role:     types.RoleTrainer,
			Active:   true,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 user, got %d", len(created))
	}
	if created[0].ID == uuid.Nil {
		t.Fatalf("Create: expected id to be assigned")
	}

	gotByIDs, err := repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}
	if gotByIDs[0].Role != types.RoleTrainer {
		t.Fatalf("GetByIDs: role=%q", gotByIDs[0].Role)
	}

	gotByEmails, err := repo.GetByEmails(ctx, tx, []string{created[0].Email})
	if err != nil {
		t.Fatalf("GetByEmails: %v", err)
	}
	if len(gotByEmails) != 1 || gotByEmails[0].Email != created[0].Email {
		t.Fatalf("GetByEmails: unexpected result: %+v", gotByEmails)
	}

	exists, err := repo.EmailExists(ctx, tx, created[0].Email)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}

	exists, err = repo.EmailExists(ctx, tx, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("EmailExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("EmailExists (missing): expected false")
	}

	_, err = repo.Create(ctx, tx, []*types.User{{Email: "userrepo@example.com", Password: "pw", Name: "dup", Role: types.RoleLearner}})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("Create duplicate: expected ErrDuplicatedKey, got %v", err)
	}

	if err := repo.UpdateFields(ctx, tx, created[0].ID, map[string]any{"name": "Renamed", "is_active": false}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	gotByIDs, err = repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil || len(gotByIDs) != 1 {
		t.Fatalf("GetByIDs after update: err=%v len=%d", err, len(gotByIDs))
	}
	if gotByIDs[0].Name != "Renamed" || gotByIDs[0].Active {
		t.Fatalf("UpdateFields: unexpected row: %+v", gotByIDs[0])
	}
}

func TestUserRepoListByOrganization(t *testing.T) {
	tx := testutil.DB(t)
	ctx := context.Background()
	repo := NewUserRepo(tx, testutil.Logger(t))

	o := testutil.SeedOrganization(t, ctx, tx, "Acme")
	testutil.SeedUser(t, ctx, tx, "b@example.com", types.RoleLearner, testutil.PtrUUID(o.ID))
	testutil.SeedUser(t, ctx, tx, "a@example.com", types.RoleTrainer, testutil.PtrUUID(o.ID))
	testutil.SeedUser(t, ctx, tx, "solo@example.com", types.RoleLearner, nil)

	inOrg, err := repo.ListByOrganizationID(ctx, tx, testutil.PtrUUID(o.ID))
	if err != nil {
		t.Fatalf("ListByOrganizationID: %v", err)
	}
	if len(inOrg) != 2 || inOrg[0].Email != "a@example.com" || inOrg[1].Email != "b@example.com" {
		t.Fatalf("ListByOrganizationID: unexpected result: %+v", inOrg)
	}

	noOrg, err := repo.ListByOrganizationID(ctx, tx, nil)
	if err != nil {
		t.Fatalf("ListByOrganizationID(nil): %v", err)
	}
	if len(noOrg) != 1 || noOrg[0].Email != "solo@example.com" {
		t.Fatalf("ListByOrganizationID(nil): unexpected result: %+v", noOrg)
	}

	all, err := repo.ListAll(ctx, tx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll: expected 3 users, got %d", len(all))
	}
}
