package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/neurobridge-lms/internal/data/repos/testutil"
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
	"github.com/yungbote/neurobridge-lms/internal/platform/pointers"
)

func TestModuleLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.moduleService()
	ctx := context.Background()

	trainer := testutil.SeedUser(t, ctx, env.db, "trainer@example.com", user.RoleTrainer, nil)
	c := testutil.SeedCourse(t, ctx, env.db, trainer.ID, nil, "course")

	_, err := svc.CreateModule(ctx, c.ID, CreateModuleInput{Title: "  "})
	expectAPIError(t, err, http.StatusBadRequest, MsgModuleTitleRequired)

	_, err = svc.CreateModule(ctx, uuid.New(), CreateModuleInput{Title: "Intro"})
	expectAPIError(t, err, http.StatusNotFound, MsgCourseNotFound)

	m, err := svc.CreateModule(ctx, c.ID, CreateModuleInput{Title: "Intro"})
	if err != nil {
		t.Fatalf("CreateModule: %v", err)
	}
	if m.Order != 0 || !m.Active || m.CourseID != c.ID {
		t.Fatalf("CreateModule: unexpected module %+v", m)
	}

	updated, err := svc.UpdateModule(ctx, m.ID, ModuleUpdate{Order: pointers.Int(3), Description: pointers.String("about")})
	if err != nil {
		t.Fatalf("UpdateModule: %v", err)
	}
	if updated.Order != 3 || updated.Description != "about" || updated.Title != "Intro" {
		t.Fatalf("UpdateModule: unexpected module %+v", updated)
	}

	_, err = svc.UpdateModule(ctx, m.ID, ModuleUpdate{Duration: pointers.Int(-1)})
	expectAPIError(t, err, http.StatusBadRequest, "")
	_, err = svc.UpdateModule(ctx, uuid.New(), ModuleUpdate{})
	expectAPIError(t, err, http.StatusNotFound, MsgModuleNotFound)

	if err := svc.DeleteModule(ctx, m.ID); err != nil {
		t.Fatalf("DeleteModule: %v", err)
	}
	got, err := svc.GetModule(ctx, m.ID)
	if err != nil || got.Active {
		t.Fatalf("GetModule after delete: err=%v module=%+v", err, got)
	}
	expectAPIError(t, svc.DeleteModule(ctx, uuid.New()), http.StatusNotFound, MsgModuleNotFound)
}

func TestLessonLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.lessonService()
	ctx := context.Background()

	trainer := testutil.SeedUser(t, ctx, env.db, "trainer@example.com", user.RoleTrainer, nil)
	c := testutil.SeedCourse(t, ctx, env.db, trainer.ID, nil, "course")
	m, err := env.moduleService().CreateModule(ctx, c.ID, CreateModuleInput{Title: "Intro", Order: 1})
	if err != nil {
		t.Fatalf("CreateModule: %v", err)
	}

	_, err = svc.CreateLesson(ctx, m.ID, CreateLessonInput{Title: "Welcome"})
	expectAPIError(t, err, http.StatusBadRequest, MsgLessonRequired)

	_, err = svc.CreateLesson(ctx, m.ID, CreateLessonInput{Title: "Welcome", ContentType: "PODCAST"})
	expectAPIError(t, err, http.StatusBadRequest, "")

	_, err = svc.CreateLesson(ctx, uuid.New(), CreateLessonInput{Title: "Welcome", ContentType: "VIDEO"})
	expectAPIError(t, err, http.StatusNotFound, MsgModuleNotFound)

	l, err := svc.CreateLesson(ctx, m.ID, CreateLessonInput{Title: "Welcome", ContentType: "video", ContentURL: "https://example.com/v.mp4", Order: 1})
	if err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}
	if l.ContentType != "VIDEO" || l.Preview || l.Order != 1 {
		t.Fatalf("CreateLesson: unexpected lesson %+v", l)
	}

	updated, err := svc.UpdateLesson(ctx, l.ID, LessonUpdate{IsPreview: pointers.Bool(true), ContentType: pointers.String("text"), TextContent: pointers.String("hello")})
	if err != nil {
		t.Fatalf("UpdateLesson: %v", err)
	}
	if !updated.Preview || updated.ContentType != "TEXT" || updated.TextContent != "hello" {
		t.Fatalf("UpdateLesson: unexpected lesson %+v", updated)
	}
	_, err = svc.UpdateLesson(ctx, l.ID, LessonUpdate{ContentType: pointers.String("hologram")})
	expectAPIError(t, err, http.StatusBadRequest, "")

	if err := svc.DeleteLesson(ctx, l.ID); err != nil {
		t.Fatalf("DeleteLesson: %v", err)
	}
	got, err := svc.GetLesson(ctx, l.ID)
	if err != nil || got.Active {
		t.Fatalf("GetLesson after delete: err=%v lesson=%+v", err, got)
	}
	_, err = svc.GetLesson(ctx, uuid.New())
	expectAPIError(t, err, http.StatusNotFound, MsgLessonNotFound)
}
