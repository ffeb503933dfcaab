package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"gorm.io/gorm"
)

func SeedOrganization(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Organization {
	tb.Helper()
	o := &types.Organization{Name: name, Active: true}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed organization: %v", err)
	}
	return o
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, role string, orgID *uuid.UUID) *types.User {
	tb.Helper()
	u := &types.User{
		Name:           "A B",
		Email:          email,
		Password:       "pw",
		Role:           role,
		OrganizationID: orgID,
		Active:         true,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, trainerID uuid.UUID, orgID *uuid.UUID, title string) *types.Course {
	tb.Helper()
	c := &types.Course{
		Title:          title,
		Description:    title + " description",
		OrganizationID: orgID,
		TrainerID:      trainerID,
		Category:       "OTHER",
		Difficulty:     "BEGINNER",
		Status:         "DRAFT",
		Tags:           []string{},
		Prerequisites:  []string{},
		Active:         true,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

// SeedCourseModule sets created_at explicitly so tie-break ordering is deterministic.
func SeedCourseModule(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID uuid.UUID, order int, createdAt time.Time) *types.CourseModule {
	tb.Helper()
	m := &types.CourseModule{
		CourseID:  courseID,
		Title:     "module",
		Order:     order,
		Active:    true,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: createdAt.UTC(),
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed course module: %v", err)
	}
	return m
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, order int, createdAt time.Time) *types.Lesson {
	tb.Helper()
	l := &types.Lesson{
		ModuleID:    moduleID,
		Title:       "lesson",
		ContentType: "TEXT",
		TextContent: "content",
		Order:       order,
		Active:      true,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   createdAt.UTC(),
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
