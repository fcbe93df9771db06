package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/model"
	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
)

// GroupTeacherService manages the group-teacher assignments. Removal is a
// soft delete, so a pair can be assigned again after removal.
type GroupTeacherService interface {
	Add(ctx context.Context, groupID, teacherID uint) (*dto.GroupTeacherResponse, error)
	Remove(ctx context.Context, groupID, teacherID uint) error
	Get(ctx context.Context, groupID, teacherID uint) (*dto.GroupTeacherResponse, error)
	ListByTeacher(ctx context.Context, teacherID uint, skip, take int) ([]dto.GroupTeacherResponse, error)
	ListByGroup(ctx context.Context, groupID uint, skip, take int) ([]dto.GroupTeacherResponse, error)
}

type groupTeacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGroupTeacherService creates a GroupTeacherService instance.
func NewGroupTeacherService(repo *repository.Repository, logger *zap.Logger) GroupTeacherService {
	return &groupTeacherService{repo: repo, logger: logger}
}

func (s *groupTeacherService) Add(ctx context.Context, groupID, teacherID uint) (*dto.GroupTeacherResponse, error) {
	if err := s.ensureSidesLive(ctx, groupID, teacherID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GroupTeacher.GetByPair(ctx, groupID, teacherID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check group teacher pair failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	if existing != nil {
		return nil, apperr.NewConflict("teacher %d is already assigned to group %d", teacherID, groupID)
	}

	assoc := &model.GroupTeacher{GroupID: groupID, TeacherID: teacherID}
	if err := s.repo.GroupTeacher.Create(ctx, assoc); err != nil {
		// partial unique index on live pairs catches the racing insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("teacher %d is already assigned to group %d", teacherID, groupID)
		}
		s.logger.Error("create group teacher failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	resp := groupTeacherResponse(assoc)
	return &resp, nil
}

func (s *groupTeacherService) Remove(ctx context.Context, groupID, teacherID uint) error {
	assoc, err := s.getLivePair(ctx, groupID, teacherID)
	if err != nil {
		return err
	}

	if err := s.repo.GroupTeacher.SoftDelete(ctx, assoc.ID, time.Now()); err != nil {
		s.logger.Error("remove group teacher failed", zap.Uint("id", assoc.ID), zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}

func (s *groupTeacherService) Get(ctx context.Context, groupID, teacherID uint) (*dto.GroupTeacherResponse, error) {
	assoc, err := s.getLivePair(ctx, groupID, teacherID)
	if err != nil {
		return nil, err
	}
	resp := groupTeacherResponse(assoc)
	return &resp, nil
}

func (s *groupTeacherService) ListByTeacher(ctx context.Context, teacherID uint, skip, take int) ([]dto.GroupTeacherResponse, error) {
	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Teacher", "id", teacherID)
		}
		s.logger.Error("get teacher failed", zap.Uint("id", teacherID), zap.Error(err))
		return nil, apperr.Store(err)
	}

	assocs, err := s.repo.GroupTeacher.ListByTeacher(ctx, teacherID, skip, take)
	if err != nil {
		s.logger.Error("list teacher groups failed", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return groupTeacherResponses(assocs), nil
}

func (s *groupTeacherService) ListByGroup(ctx context.Context, groupID uint, skip, take int) ([]dto.GroupTeacherResponse, error) {
	if _, err := s.repo.Group.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Group", "id", groupID)
		}
		s.logger.Error("get group failed", zap.Uint("id", groupID), zap.Error(err))
		return nil, apperr.Store(err)
	}

	assocs, err := s.repo.GroupTeacher.ListByGroup(ctx, groupID, skip, take)
	if err != nil {
		s.logger.Error("list group teachers failed", zap.Uint("group_id", groupID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return groupTeacherResponses(assocs), nil
}

func (s *groupTeacherService) ensureSidesLive(ctx context.Context, groupID, teacherID uint) error {
	if _, err := s.repo.Group.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("Group", "id", groupID)
		}
		s.logger.Error("get group failed", zap.Uint("id", groupID), zap.Error(err))
		return apperr.Store(err)
	}
	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("Teacher", "id", teacherID)
		}
		s.logger.Error("get teacher failed", zap.Uint("id", teacherID), zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}

func (s *groupTeacherService) getLivePair(ctx context.Context, groupID, teacherID uint) (*model.GroupTeacher, error) {
	assoc, err := s.repo.GroupTeacher.GetByPair(ctx, groupID, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundMulti("GroupTeacher",
				apperr.KeyValue{Key: "group_id", Value: groupID},
				apperr.KeyValue{Key: "teacher_id", Value: teacherID},
			)
		}
		s.logger.Error("get group teacher pair failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return assoc, nil
}

func groupTeacherResponse(assoc *model.GroupTeacher) dto.GroupTeacherResponse {
	resp := dto.GroupTeacherResponse{
		ID:        assoc.ID,
		GroupID:   assoc.GroupID,
		TeacherID: assoc.TeacherID,
		CreatedAt: formatTime(assoc.CreatedAt),
		UpdatedAt: formatTime(assoc.UpdatedAt),
	}
	if assoc.Group != nil {
		g := groupSummary(assoc.Group)
		resp.Group = &g
	}
	if assoc.Teacher != nil {
		t := teacherSummary(assoc.Teacher)
		resp.Teacher = &t
	}
	return resp
}

func groupTeacherResponses(assocs []model.GroupTeacher) []dto.GroupTeacherResponse {
	result := make([]dto.GroupTeacherResponse, 0, len(assocs))
	for i := range assocs {
		result = append(result, groupTeacherResponse(&assocs[i]))
	}
	return result
}
