package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
)

func setupTestTeacherService() (TeacherService, *store) {
	repo, st := newTestRepo()
	return NewTeacherService(repo, zap.NewNop()), st
}

func newTeacherRequest(username string) *dto.CreateTeacherRequest {
	return &dto.CreateTeacherRequest{
		Username:  username,
		Password:  "swordfish42",
		FirstName: "Ada",
		LastName:  "Jones",
		Age:       40,
	}
}

func TestTeacherCreateHashesPassword(t *testing.T) {
	svc, st := setupTestTeacherService()
	ctx := context.Background()

	created, err := svc.Create(ctx, newTeacherRequest("prof_jones"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Username != "prof_jones" {
		t.Fatalf("unexpected summary: %+v", created)
	}

	stored := st.teachers[0]
	if stored.PasswordHash == "swordfish42" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("swordfish42")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestTeacherCreateDuplicateUsername(t *testing.T) {
	svc, _ := setupTestTeacherService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, newTeacherRequest("prof_jones")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, newTeacherRequest("prof_jones"))
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestTeacherUpdatePassword(t *testing.T) {
	svc, st := setupTestTeacherService()
	ctx := context.Background()

	created, err := svc.Create(ctx, newTeacherRequest("prof_jones"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, created.ID, &dto.UpdateTeacherRequest{Password: strPtr("newsecret99")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(st.teachers[0].PasswordHash), []byte("newsecret99")); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
}

func TestTeacherDeleteRewritesUsername(t *testing.T) {
	svc, st := setupTestTeacherService()
	ctx := context.Background()

	created, err := svc.Create(ctx, newTeacherRequest("prof_jones"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if !strings.HasPrefix(st.teachers[0].Username, "prof_jones_deleted_") {
		t.Fatalf("username not rewritten: %q", st.teachers[0].Username)
	}

	// the freed username is available again
	if _, err := svc.Create(ctx, newTeacherRequest("prof_jones")); err != nil {
		t.Fatalf("recreate: %v", err)
	}
}

func TestTeacherDetailIncludesSubjects(t *testing.T) {
	repo, _ := newTestRepo()
	logger := zap.NewNop()
	teachers := NewTeacherService(repo, logger)
	subjects := NewSubjectService(repo, logger)
	qualifications := NewTeacherSubjectService(repo, logger)
	ctx := context.Background()

	teacher, err := teachers.Create(ctx, newTeacherRequest("prof_jones"))
	if err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	subject, err := subjects.Create(ctx, &dto.CreateSubjectRequest{Title: "Algebra"})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	if err := qualifications.Add(ctx, teacher.ID, subject.ID); err != nil {
		t.Fatalf("add subject: %v", err)
	}

	detail, err := teachers.GetDetailsByID(ctx, teacher.ID)
	if err != nil {
		t.Fatalf("get details: %v", err)
	}
	if len(detail.Subjects) != 1 || detail.Subjects[0].Title != "Algebra" {
		t.Fatalf("unexpected subjects: %+v", detail.Subjects)
	}
	if detail.CreatedAt == "" || detail.UpdatedAt == "" {
		t.Fatal("audit timestamps missing from detail")
	}
}

func TestTeacherFilterUsernamePrecedence(t *testing.T) {
	svc, _ := setupTestTeacherService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, newTeacherRequest("prof_jones")); err != nil {
		t.Fatalf("create: %v", err)
	}
	req := newTeacherRequest("prof_smith")
	req.LastName = "Smith"
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("create: %v", err)
	}

	rows, err := svc.ListByFilter(ctx, &dto.TeacherFilterRequest{
		Username:    strPtr("prof_smith"),
		NamePattern: strPtr("jones"),
	})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(rows) != 1 || rows[0].Username != "prof_smith" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	_, err = svc.ListByFilter(ctx, &dto.TeacherFilterRequest{Username: strPtr("nobody_here")})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}

	rows, err = svc.ListByFilter(ctx, &dto.TeacherFilterRequest{NamePattern: strPtr("smith")})
	if err != nil {
		t.Fatalf("pattern filter: %v", err)
	}
	if len(rows) != 1 || rows[0].LastName != "Smith" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
