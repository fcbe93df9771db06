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

// GroupService is the student-group business interface.
type GroupService interface {
	List(ctx context.Context, skip, take int) ([]dto.GroupSummary, error)
	ListDetails(ctx context.Context, skip, take int) ([]dto.GroupDetail, error)
	ListByFilter(ctx context.Context, req *dto.GroupFilterRequest) ([]dto.GroupSummary, error)
	ListByFilterDetails(ctx context.Context, req *dto.GroupFilterRequest) ([]dto.GroupDetail, error)
	GetByID(ctx context.Context, id uint) (*dto.GroupSummary, error)
	GetDetailsByID(ctx context.Context, id uint) (*dto.GroupDetail, error)
	Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupSummary, error)
	Update(ctx context.Context, id uint, req *dto.UpdateGroupRequest) (*dto.GroupSummary, error)
	Delete(ctx context.Context, id uint) error
}

type groupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGroupService creates a GroupService instance.
func NewGroupService(repo *repository.Repository, logger *zap.Logger) GroupService {
	return &groupService{repo: repo, logger: logger}
}

func (s *groupService) List(ctx context.Context, skip, take int) ([]dto.GroupSummary, error) {
	groups, err := s.repo.Group.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list groups failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return groupSummaries(groups), nil
}

func (s *groupService) ListDetails(ctx context.Context, skip, take int) ([]dto.GroupDetail, error) {
	groups, err := s.repo.Group.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list groups failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return groupDetails(groups), nil
}

func (s *groupService) ListByFilter(ctx context.Context, req *dto.GroupFilterRequest) ([]dto.GroupSummary, error) {
	groups, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return groupSummaries(groups), nil
}

func (s *groupService) ListByFilterDetails(ctx context.Context, req *dto.GroupFilterRequest) ([]dto.GroupDetail, error) {
	groups, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return groupDetails(groups), nil
}

func (s *groupService) filtered(ctx context.Context, req *dto.GroupFilterRequest) ([]model.Group, error) {
	if req.Title != nil {
		group, err := s.repo.Group.GetByTitle(ctx, *req.Title)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewNotFound("Group", "title", *req.Title)
			}
			s.logger.Error("get group by title failed", zap.Error(err))
			return nil, apperr.Store(err)
		}
		return []model.Group{*group}, nil
	}

	filters := &repository.GroupFilters{TeacherID: req.TeacherID}
	groups, err := s.repo.Group.ListWithFilters(ctx, filters, req.GetSkip(), req.GetTake())
	if err != nil {
		s.logger.Error("filter groups failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return groups, nil
}

func (s *groupService) GetByID(ctx context.Context, id uint) (*dto.GroupSummary, error) {
	group, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := groupSummary(group)
	return &summary, nil
}

func (s *groupService) GetDetailsByID(ctx context.Context, id uint) (*dto.GroupDetail, error) {
	group, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := groupDetail(group)
	return &detail, nil
}

func (s *groupService) Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupSummary, error) {
	if err := s.ensureTitleFree(ctx, req.Title); err != nil {
		return nil, err
	}

	group := &model.Group{Title: req.Title}
	if err := s.repo.Group.Create(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("group title %q is already taken", req.Title)
		}
		s.logger.Error("create group failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	summary := groupSummary(group)
	return &summary, nil
}

func (s *groupService) Update(ctx context.Context, id uint, req *dto.UpdateGroupRequest) (*dto.GroupSummary, error) {
	group, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != group.Title {
		if err := s.ensureTitleFree(ctx, *req.Title); err != nil {
			return nil, err
		}
		group.Title = *req.Title
	}

	if err := s.repo.Group.Update(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("group title %q is already taken", group.Title)
		}
		s.logger.Error("update group failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}

	summary := groupSummary(group)
	return &summary, nil
}

func (s *groupService) Delete(ctx context.Context, id uint) error {
	group, err := s.getLive(ctx, id)
	if err != nil {
		return err
	}

	lessonIDs, err := s.repo.Lesson.IDsByGroup(ctx, group.ID)
	if err != nil {
		s.logger.Error("load dependent lessons failed", zap.Uint("group_id", id), zap.Error(err))
		return apperr.Store(err)
	}

	now := time.Now()
	newTitle := deletedName(group.Title, now)
	if err := s.repo.Group.SoftDeleteCascade(ctx, group.ID, newTitle, lessonIDs, now); err != nil {
		s.logger.Error("delete group failed", zap.Uint("id", id), zap.Error(err))
		return apperr.Store(err)
	}

	return nil
}

func (s *groupService) getLive(ctx context.Context, id uint) (*model.Group, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Group", "id", id)
		}
		s.logger.Error("get group failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return group, nil
}

func (s *groupService) ensureTitleFree(ctx context.Context, title string) error {
	existing, err := s.repo.Group.GetByTitleAny(ctx, title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check group title failed", zap.Error(err))
		return apperr.Store(err)
	}
	if existing != nil {
		return apperr.NewConflict("group title %q is already taken", title)
	}
	return nil
}

// projection helpers

func groupSummary(group *model.Group) dto.GroupSummary {
	return dto.GroupSummary{ID: group.ID, Title: group.Title}
}

func groupDetail(group *model.Group) dto.GroupDetail {
	return dto.GroupDetail{
		GroupSummary: groupSummary(group),
		CreatedAt:    formatTime(group.CreatedAt),
		UpdatedAt:    formatTime(group.UpdatedAt),
	}
}

func groupSummaries(groups []model.Group) []dto.GroupSummary {
	result := make([]dto.GroupSummary, 0, len(groups))
	for i := range groups {
		result = append(result, groupSummary(&groups[i]))
	}
	return result
}

func groupDetails(groups []model.Group) []dto.GroupDetail {
	result := make([]dto.GroupDetail, 0, len(groups))
	for i := range groups {
		result = append(result, groupDetail(&groups[i]))
	}
	return result
}
