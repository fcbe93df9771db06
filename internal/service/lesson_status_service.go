package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/model"
	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
)

// LessonStatusService manages the status vocabulary. Statuses are never
// deleted; lessons keep referencing them for their whole lifetime.
type LessonStatusService interface {
	List(ctx context.Context) ([]dto.LessonStatusResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.LessonStatusResponse, error)
	Create(ctx context.Context, req *dto.CreateLessonStatusRequest) (*dto.LessonStatusResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateLessonStatusRequest) (*dto.LessonStatusResponse, error)
}

type lessonStatusService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLessonStatusService creates a LessonStatusService instance.
func NewLessonStatusService(repo *repository.Repository, logger *zap.Logger) LessonStatusService {
	return &lessonStatusService{repo: repo, logger: logger}
}

func (s *lessonStatusService) List(ctx context.Context) ([]dto.LessonStatusResponse, error) {
	statuses, err := s.repo.LessonStatus.List(ctx)
	if err != nil {
		s.logger.Error("list lesson statuses failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	result := make([]dto.LessonStatusResponse, 0, len(statuses))
	for i := range statuses {
		result = append(result, lessonStatusResponse(&statuses[i]))
	}
	return result, nil
}

func (s *lessonStatusService) GetByID(ctx context.Context, id uint) (*dto.LessonStatusResponse, error) {
	status, err := s.repo.LessonStatus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("LessonStatus", "id", id)
		}
		s.logger.Error("get lesson status failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	resp := lessonStatusResponse(status)
	return &resp, nil
}

func (s *lessonStatusService) Create(ctx context.Context, req *dto.CreateLessonStatusRequest) (*dto.LessonStatusResponse, error) {
	status := &model.LessonStatus{Description: req.Description}
	if err := s.repo.LessonStatus.Create(ctx, status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("lesson status %q already exists", req.Description)
		}
		s.logger.Error("create lesson status failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	resp := lessonStatusResponse(status)
	return &resp, nil
}

func (s *lessonStatusService) Update(ctx context.Context, id uint, req *dto.UpdateLessonStatusRequest) (*dto.LessonStatusResponse, error) {
	status, err := s.repo.LessonStatus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("LessonStatus", "id", id)
		}
		s.logger.Error("get lesson status failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}

	if req.Description != nil {
		status.Description = *req.Description
	}

	if err := s.repo.LessonStatus.Update(ctx, status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("lesson status %q already exists", status.Description)
		}
		s.logger.Error("update lesson status failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	resp := lessonStatusResponse(status)
	return &resp, nil
}

func lessonStatusResponse(status *model.LessonStatus) dto.LessonStatusResponse {
	return dto.LessonStatusResponse{
		ID:          status.ID,
		Description: status.Description,
	}
}
