package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
)

// TeacherSubjectService manages the teacher-subject qualification set. The
// association rows carry no audit fields; adding or removing one re-stamps the
// owning teacher's updated_at instead.
type TeacherSubjectService interface {
	Add(ctx context.Context, teacherID, subjectID uint) error
	Remove(ctx context.Context, teacherID, subjectID uint) error
}

type teacherSubjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherSubjectService creates a TeacherSubjectService instance.
func NewTeacherSubjectService(repo *repository.Repository, logger *zap.Logger) TeacherSubjectService {
	return &teacherSubjectService{repo: repo, logger: logger}
}

func (s *teacherSubjectService) Add(ctx context.Context, teacherID, subjectID uint) error {
	if err := s.ensureSidesLive(ctx, teacherID, subjectID); err != nil {
		return err
	}

	has, err := s.repo.Teacher.HasSubject(ctx, teacherID, subjectID)
	if err != nil {
		s.logger.Error("check teacher subject failed", zap.Error(err))
		return apperr.Store(err)
	}
	if has {
		return apperr.NewConflict("teacher %d already has subject %d", teacherID, subjectID)
	}

	if err := s.repo.Teacher.AddSubject(ctx, teacherID, subjectID, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.NewConflict("teacher %d already has subject %d", teacherID, subjectID)
		}
		s.logger.Error("add teacher subject failed", zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}

func (s *teacherSubjectService) Remove(ctx context.Context, teacherID, subjectID uint) error {
	if err := s.ensureSidesLive(ctx, teacherID, subjectID); err != nil {
		return err
	}

	has, err := s.repo.Teacher.HasSubject(ctx, teacherID, subjectID)
	if err != nil {
		s.logger.Error("check teacher subject failed", zap.Error(err))
		return apperr.Store(err)
	}
	if !has {
		return apperr.NewConflict("teacher %d does not have subject %d", teacherID, subjectID)
	}

	if err := s.repo.Teacher.RemoveSubject(ctx, teacherID, subjectID, time.Now()); err != nil {
		s.logger.Error("remove teacher subject failed", zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}

func (s *teacherSubjectService) ensureSidesLive(ctx context.Context, teacherID, subjectID uint) error {
	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("Teacher", "id", teacherID)
		}
		s.logger.Error("get teacher failed", zap.Uint("id", teacherID), zap.Error(err))
		return apperr.Store(err)
	}
	if _, err := s.repo.Subject.GetByID(ctx, subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("Subject", "id", subjectID)
		}
		s.logger.Error("get subject failed", zap.Uint("id", subjectID), zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}
