package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/loxx3450/Schedule-App-sub000/config"
	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
	"github.com/loxx3450/Schedule-App-sub000/pkg/jwt"
)

func setupTestAuthService(t *testing.T) (AuthService, TeacherService, *repository.Repository) {
	t.Helper()
	repo, _ := newTestRepo()
	logger := zap.NewNop()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-16b",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repo, jwtMgr, nil, logger), NewTeacherService(repo, logger), repo
}

func TestAuthLogin(t *testing.T) {
	auth, teachers, _ := setupTestAuthService(t)
	ctx := context.Background()

	created, err := teachers.Create(ctx, newTeacherRequest("prof_jones"))
	if err != nil {
		t.Fatalf("create teacher: %v", err)
	}

	tokens, err := auth.Login(ctx, &dto.LoginRequest{Username: "prof_jones", Password: "swordfish42"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("token pair incomplete")
	}
	if tokens.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Fatalf("unexpected expires_in: %d", tokens.ExpiresIn)
	}
	if tokens.Teacher.ID != created.ID {
		t.Fatalf("unexpected teacher in response: %+v", tokens.Teacher)
	}
}

// Unknown username and wrong password must be indistinguishable.
func TestAuthLoginFailuresLookAlike(t *testing.T) {
	auth, teachers, _ := setupTestAuthService(t)
	ctx := context.Background()

	if _, err := teachers.Create(ctx, newTeacherRequest("prof_jones")); err != nil {
		t.Fatalf("create teacher: %v", err)
	}

	_, errUnknown := auth.Login(ctx, &dto.LoginRequest{Username: "nobody_here", Password: "swordfish42"})
	_, errWrongPw := auth.Login(ctx, &dto.LoginRequest{Username: "prof_jones", Password: "wrong-password"})

	if errUnknown == nil || errWrongPw == nil {
		t.Fatal("both logins should fail")
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("errors differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthRefresh(t *testing.T) {
	auth, teachers, _ := setupTestAuthService(t)
	ctx := context.Background()

	if _, err := teachers.Create(ctx, newTeacherRequest("prof_jones")); err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	tokens, err := auth.Login(ctx, &dto.LoginRequest{Username: "prof_jones", Password: "swordfish42"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := auth.Refresh(ctx, &dto.RefreshRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatal("refreshed pair incomplete")
	}

	// an access token is not accepted in the refresh slot
	if _, err := auth.Refresh(ctx, &dto.RefreshRequest{RefreshToken: tokens.AccessToken}); err == nil {
		t.Fatal("access token passed as refresh token should be rejected")
	}
}

func TestAuthRefreshAfterTeacherDeleted(t *testing.T) {
	auth, teachers, _ := setupTestAuthService(t)
	ctx := context.Background()

	created, err := teachers.Create(ctx, newTeacherRequest("prof_jones"))
	if err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	tokens, err := auth.Login(ctx, &dto.LoginRequest{Username: "prof_jones", Password: "swordfish42"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := teachers.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete teacher: %v", err)
	}
	if _, err := auth.Refresh(ctx, &dto.RefreshRequest{RefreshToken: tokens.RefreshToken}); err == nil {
		t.Fatal("refresh for a deleted teacher should be rejected")
	}
}

func TestAuthLogoutWithoutRedis(t *testing.T) {
	auth, teachers, _ := setupTestAuthService(t)
	ctx := context.Background()

	if _, err := teachers.Create(ctx, newTeacherRequest("prof_jones")); err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	tokens, err := auth.Login(ctx, &dto.LoginRequest{Username: "prof_jones", Password: "swordfish42"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// without redis the blacklist degrades to a no-op, not an error
	if err := auth.Logout(ctx, tokens.AccessToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := auth.Logout(ctx, "garbage-token"); err == nil {
		t.Fatal("logout with a bad token should be rejected")
	}
}
