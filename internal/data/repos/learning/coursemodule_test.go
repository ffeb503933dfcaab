package learning

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/neurobridge-lms/internal/data/repos/testutil"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
)

func TestCourseModuleRepo(t *testing.T) {
	tx := testutil.DB(t)

	ctx := context.Background()
	repo := NewCourseModuleRepo(tx, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "coursemodule@example.com", types.RoleTrainer, nil)
	course := testutil.SeedCourse(t, ctx, tx, u.ID, nil, "course")

	m1 := &types.CourseModule{
		CourseID: course.ID,
		Order:    0,
		Title:    "m1",
		Active:   true,
	}
	if _, err := repo.Create(ctx, tx, []*types.CourseModule{m1}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{m1.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetActiveByCourseIDs(ctx, tx, []uuid.UUID{course.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetActiveByCourseIDs: err=%v len=%d", err, len(rows))
	}

	if err := repo.UpdateFields(ctx, tx, m1.ID, map[string]any{"sort_order": 4, "title": "renamed"}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{m1.ID}); err != nil || len(rows) != 1 || rows[0].Order != 4 || rows[0].Title != "renamed" {
		t.Fatalf("GetByIDs after update: err=%v rows=%+v", err, rows)
	}

	if err := repo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{m1.ID}); err != nil {
		t.Fatalf("SoftDeleteByIDs: %v", err)
	}
	if rows, err := repo.GetActiveByCourseIDs(ctx, tx, []uuid.UUID{course.ID}); err != nil || len(rows) != 0 {
		t.Fatalf("after SoftDeleteByIDs GetActiveByCourseIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{m1.ID}); err != nil || len(rows) != 1 || rows[0].Active {
		t.Fatalf("after SoftDeleteByIDs GetByIDs: err=%v rows=%+v", err, rows)
	}
}

func TestCourseModuleRepoOrdering(t *testing.T) {
	tx := testutil.DB(t)
	ctx := context.Background()
	repo := NewCourseModuleRepo(tx, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "ordering@example.com", types.RoleTrainer, nil)
	course := testutil.SeedCourse(t, ctx, tx, u.ID, nil, "course")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	third := testutil.SeedCourseModule(t, ctx, tx, course.ID, 2, base)
	second := testutil.SeedCourseModule(t, ctx, tx, course.ID, 1, base.Add(time.Minute))
	first := testutil.SeedCourseModule(t, ctx, tx, course.ID, 1, base)

	rows, err := repo.GetActiveByCourseIDs(ctx, tx, []uuid.UUID{course.ID})
	if err != nil {
		t.Fatalf("GetActiveByCourseIDs: %v", err)
	}
	want := []uuid.UUID{first.ID, second.ID, third.ID}
	if len(rows) != len(want) {
		t.Fatalf("GetActiveByCourseIDs: expected %d rows, got %d", len(want), len(rows))
	}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("GetActiveByCourseIDs[%d]: expected %s, got %s", i, id, rows[i].ID)
		}
	}
}
