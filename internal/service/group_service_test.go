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

func TestGroupDeleteCascadesAndFreesTitle(t *testing.T) {
	repo, st := newTestRepo()
	logger := zap.NewNop()
	groups := NewGroupService(repo, logger)
	lessons := NewLessonService(repo, logger)
	ctx := context.Background()

	deps := seedLessonDeps(t, ctx, repo)
	lesson, err := lessons.Create(ctx, deps.createRequest())
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}

	if err := groups.Delete(ctx, deps.groupID); err != nil {
		t.Fatalf("delete group: %v", err)
	}

	if !strings.HasPrefix(st.groups[0].Title, "G-21_deleted_") {
		t.Fatalf("title not rewritten: %q", st.groups[0].Title)
	}
	if _, err := lessons.GetByID(ctx, lesson.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("lesson should be gone, got %v", err)
	}

	if _, err := groups.Create(ctx, &dto.CreateGroupRequest{Title: "G-21"}); err != nil {
		t.Fatalf("recreate: %v", err)
	}
}

func TestGroupSoftDeletedTitleBlocksUntilRewritten(t *testing.T) {
	repo, st := newTestRepo()
	groups := NewGroupService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := groups.Create(ctx, &dto.CreateGroupRequest{Title: "G-21"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// simulate a deleted row whose title was never rewritten
	st.groups[0].DeletedAt.Time = st.groups[0].UpdatedAt
	st.groups[0].DeletedAt.Valid = true

	_, err = groups.Create(ctx, &dto.CreateGroupRequest{Title: "G-21"})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("want conflict, got %v", err)
	}

	_, err = groups.GetByID(ctx, created.ID)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("deleted row should be invisible, got %v", err)
	}
}
