package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
)

func setupTestClassroomService() (ClassroomService, *store) {
	repo, st := newTestRepo()
	return NewClassroomService(repo, zap.NewNop()), st
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

func TestClassroomCreateAndGet(t *testing.T) {
	svc, _ := setupTestClassroomService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: "R 101"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.Title != "R 101" {
		t.Fatalf("unexpected summary: %+v", created)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "R 101" {
		t.Fatalf("got title %q", got.Title)
	}
}

func TestClassroomCreateDuplicateTitle(t *testing.T) {
	svc, _ := setupTestClassroomService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: "R 101"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: "R 101"})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestClassroomDeleteFreesTitle(t *testing.T) {
	svc, st := setupTestClassroomService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: "R 101"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// deleted row keeps a rewritten title and the original becomes reusable
	if !strings.HasPrefix(st.classrooms[0].Title, "R 101_deleted_") {
		t.Fatalf("title not rewritten: %q", st.classrooms[0].Title)
	}
	if st.classrooms[0].UpdatedAt != st.classrooms[0].DeletedAt.Time {
		t.Fatal("updated_at and deleted_at differ")
	}

	if _, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: "R 101"}); err != nil {
		t.Fatalf("recreate after delete: %v", err)
	}
}

func TestClassroomDeleteCascadesLessons(t *testing.T) {
	repo, st := newTestRepo()
	logger := zap.NewNop()
	rooms := NewClassroomService(repo, logger)
	lessons := NewLessonService(repo, logger)
	ctx := context.Background()

	deps := seedLessonDeps(t, ctx, repo)
	lesson, err := lessons.Create(ctx, &dto.CreateLessonRequest{
		ClassroomID:    deps.classroomID,
		SubjectID:      deps.subjectID,
		GroupID:        deps.groupID,
		TeacherID:      deps.teacherID,
		LessonStatusID: deps.statusID,
		StartsAt:       deps.start,
		EndsAt:         deps.end,
	})
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}

	if err := rooms.Delete(ctx, deps.classroomID); err != nil {
		t.Fatalf("delete classroom: %v", err)
	}

	if _, err := lessons.GetByID(ctx, lesson.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("lesson should be gone, got %v", err)
	}
	// both rows stamped with the same clock read
	if st.lessons[0].DeletedAt.Time != st.classrooms[0].DeletedAt.Time {
		t.Fatal("cascade used a different timestamp")
	}
}

func TestClassroomFilterTitlePrecedence(t *testing.T) {
	svc, _ := setupTestClassroomService()
	ctx := context.Background()

	for _, title := range []string{"R 101", "R 102", "Lab 1"} {
		if _, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: title}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	// exact title beats the pattern predicate
	rooms, err := svc.ListByFilter(ctx, &dto.ClassroomFilterRequest{
		Title:        strPtr("Lab 1"),
		TitlePattern: strPtr("R 10"),
	})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Title != "Lab 1" {
		t.Fatalf("unexpected result: %+v", rooms)
	}

	// absent exact title is an error, not an empty list
	_, err = svc.ListByFilter(ctx, &dto.ClassroomFilterRequest{Title: strPtr("R 999")})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}

	rooms, err = svc.ListByFilter(ctx, &dto.ClassroomFilterRequest{TitlePattern: strPtr("r 10")})
	if err != nil {
		t.Fatalf("pattern filter: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("want 2 matches, got %d", len(rooms))
	}
}

func TestClassroomEmptyFilterEqualsList(t *testing.T) {
	svc, _ := setupTestClassroomService()
	ctx := context.Background()

	for _, title := range []string{"R 101", "R 102", "Lab 1"} {
		if _, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: title}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	listed, err := svc.List(ctx, 0, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	filtered, err := svc.ListByFilter(ctx, &dto.ClassroomFilterRequest{})
	if err != nil {
		t.Fatalf("empty filter: %v", err)
	}
	if len(listed) != len(filtered) {
		t.Fatalf("list %d vs filter %d", len(listed), len(filtered))
	}
	for i := range listed {
		if listed[i] != filtered[i] {
			t.Fatalf("row %d differs: %+v vs %+v", i, listed[i], filtered[i])
		}
	}
}

func TestClassroomPagination(t *testing.T) {
	svc, _ := setupTestClassroomService()
	ctx := context.Background()

	titles := []string{"R 101", "R 102", "R 103", "R 104", "R 105"}
	for _, title := range titles {
		if _, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: title}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	window, err := svc.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(window) != 2 || window[0].Title != "R 103" || window[1].Title != "R 104" {
		t.Fatalf("unexpected window: %+v", window)
	}

	tail, err := svc.List(ctx, 4, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tail) != 1 || tail[0].Title != "R 105" {
		t.Fatalf("unexpected tail: %+v", tail)
	}

	empty, err := svc.List(ctx, 10, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("want empty window, got %+v", empty)
	}
}

func TestClassroomUpdateTitleConflict(t *testing.T) {
	svc, _ := setupTestClassroomService()
	ctx := context.Background()

	a, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: "R 101"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateClassroomRequest{Title: "R 102"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, a.ID, &dto.UpdateClassroomRequest{Title: strPtr("R 102")})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("want conflict, got %v", err)
	}

	// no-op rename to the current title is allowed
	if _, err := svc.Update(ctx, a.ID, &dto.UpdateClassroomRequest{Title: strPtr("R 101")}); err != nil {
		t.Fatalf("self rename: %v", err)
	}
}

func TestClassroomGetMissing(t *testing.T) {
	svc, _ := setupTestClassroomService()

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Classroom" {
		t.Fatalf("unexpected error shape: %v", err)
	}
}
