package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/config"
	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/jwt"
	"github.com/loxx3450/Schedule-App-sub000/pkg/redis"
)

// ErrInvalidCredentials is returned for any login failure. Unknown username
// and wrong password are indistinguishable to the caller.
var ErrInvalidCredentials = fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)

// AuthService issues, refreshes and revokes token pairs for teachers.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	Me(ctx context.Context, teacherID uint) (*dto.TeacherSummary, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates an AuthService instance. rdb may be nil.
func NewAuthService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	teacher, err := s.repo.Teacher.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(teacher.ID, teacher.Username, teacherSummary(teacher))
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh token rejected: %w", apperr.ErrUnauthorized)
	}
	if claims.TokenType != "refresh" {
		return nil, fmt.Errorf("refresh token rejected: %w", apperr.ErrUnauthorized)
	}

	if blacklisted, err := s.isBlacklisted(ctx, claims.ID); err != nil {
		return nil, err
	} else if blacklisted {
		return nil, fmt.Errorf("refresh token revoked: %w", apperr.ErrUnauthorized)
	}

	// the teacher may have been deleted since the token was issued
	teacher, err := s.repo.Teacher.GetByID(ctx, claims.TeacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("refresh token rejected: %w", apperr.ErrUnauthorized)
		}
		s.logger.Error("refresh lookup failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	return s.issueTokens(teacher.ID, teacher.Username, teacherSummary(teacher))
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtMgr.ParseToken(accessToken)
	if err != nil {
		return fmt.Errorf("token rejected: %w", apperr.ErrUnauthorized)
	}

	if s.rdb == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context, teacherID uint) (*dto.TeacherSummary, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Teacher", "id", teacherID)
		}
		s.logger.Error("get current teacher failed", zap.Uint("id", teacherID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	summary := teacherSummary(teacher)
	return &summary, nil
}

func (s *authService) issueTokens(teacherID uint, username string, summary dto.TeacherSummary) (*dto.TokenResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(teacherID, username, "teacher")
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(teacherID, username, "teacher")
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.jwtMgr.AccessTokenTTL().Seconds()),
		Teacher:      summary,
	}, nil
}

func (s *authService) isBlacklisted(ctx context.Context, jti string) (bool, error) {
	if s.rdb == nil {
		return false, nil
	}
	blacklisted, err := s.rdb.IsBlacklisted(ctx, jti)
	if err != nil {
		s.logger.Error("blacklist check failed", zap.Error(err))
		return false, apperr.Store(err)
	}
	return blacklisted, nil
}
