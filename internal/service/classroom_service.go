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

// ClassroomService is the classroom business interface.
type ClassroomService interface {
	List(ctx context.Context, skip, take int) ([]dto.ClassroomSummary, error)
	ListDetails(ctx context.Context, skip, take int) ([]dto.ClassroomDetail, error)
	ListByFilter(ctx context.Context, req *dto.ClassroomFilterRequest) ([]dto.ClassroomSummary, error)
	ListByFilterDetails(ctx context.Context, req *dto.ClassroomFilterRequest) ([]dto.ClassroomDetail, error)
	GetByID(ctx context.Context, id uint) (*dto.ClassroomSummary, error)
	GetDetailsByID(ctx context.Context, id uint) (*dto.ClassroomDetail, error)
	Create(ctx context.Context, req *dto.CreateClassroomRequest) (*dto.ClassroomSummary, error)
	Update(ctx context.Context, id uint, req *dto.UpdateClassroomRequest) (*dto.ClassroomSummary, error)
	Delete(ctx context.Context, id uint) error
}

type classroomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassroomService creates a ClassroomService instance.
func NewClassroomService(repo *repository.Repository, logger *zap.Logger) ClassroomService {
	return &classroomService{repo: repo, logger: logger}
}

func (s *classroomService) List(ctx context.Context, skip, take int) ([]dto.ClassroomSummary, error) {
	rooms, err := s.repo.Classroom.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list classrooms failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return classroomSummaries(rooms), nil
}

func (s *classroomService) ListDetails(ctx context.Context, skip, take int) ([]dto.ClassroomDetail, error) {
	rooms, err := s.repo.Classroom.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list classrooms failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return classroomDetails(rooms), nil
}

func (s *classroomService) ListByFilter(ctx context.Context, req *dto.ClassroomFilterRequest) ([]dto.ClassroomSummary, error) {
	rooms, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return classroomSummaries(rooms), nil
}

func (s *classroomService) ListByFilterDetails(ctx context.Context, req *dto.ClassroomFilterRequest) ([]dto.ClassroomDetail, error) {
	rooms, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return classroomDetails(rooms), nil
}

// filtered resolves the search query. A present title wins over the other
// predicates and is an exact-match existence lookup.
func (s *classroomService) filtered(ctx context.Context, req *dto.ClassroomFilterRequest) ([]model.Classroom, error) {
	if req.Title != nil {
		room, err := s.repo.Classroom.GetByTitle(ctx, *req.Title)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewNotFound("Classroom", "title", *req.Title)
			}
			s.logger.Error("get classroom by title failed", zap.Error(err))
			return nil, apperr.Store(err)
		}
		return []model.Classroom{*room}, nil
	}

	filters := &repository.ClassroomFilters{TitlePattern: req.TitlePattern}
	rooms, err := s.repo.Classroom.ListWithFilters(ctx, filters, req.GetSkip(), req.GetTake())
	if err != nil {
		s.logger.Error("filter classrooms failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return rooms, nil
}

func (s *classroomService) GetByID(ctx context.Context, id uint) (*dto.ClassroomSummary, error) {
	room, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := classroomSummary(room)
	return &summary, nil
}

func (s *classroomService) GetDetailsByID(ctx context.Context, id uint) (*dto.ClassroomDetail, error) {
	room, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := classroomDetail(room)
	return &detail, nil
}

func (s *classroomService) Create(ctx context.Context, req *dto.CreateClassroomRequest) (*dto.ClassroomSummary, error) {
	// Uniqueness is checked among ALL rows: a soft-deleted title still blocks
	// reuse until its row has been rewritten.
	if err := s.ensureTitleFree(ctx, req.Title); err != nil {
		return nil, err
	}

	room := &model.Classroom{Title: req.Title}
	if err := s.repo.Classroom.Create(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("classroom title %q is already taken", req.Title)
		}
		s.logger.Error("create classroom failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	summary := classroomSummary(room)
	return &summary, nil
}

func (s *classroomService) Update(ctx context.Context, id uint, req *dto.UpdateClassroomRequest) (*dto.ClassroomSummary, error) {
	room, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != room.Title {
		if err := s.ensureTitleFree(ctx, *req.Title); err != nil {
			return nil, err
		}
		room.Title = *req.Title
	}

	if err := s.repo.Classroom.Update(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("classroom title %q is already taken", room.Title)
		}
		s.logger.Error("update classroom failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}

	summary := classroomSummary(room)
	return &summary, nil
}

func (s *classroomService) Delete(ctx context.Context, id uint) error {
	room, err := s.getLive(ctx, id)
	if err != nil {
		return err
	}

	lessonIDs, err := s.repo.Lesson.IDsByClassroom(ctx, room.ID)
	if err != nil {
		s.logger.Error("load dependent lessons failed", zap.Uint("classroom_id", id), zap.Error(err))
		return apperr.Store(err)
	}

	now := time.Now()
	newTitle := deletedName(room.Title, now)
	if err := s.repo.Classroom.SoftDeleteCascade(ctx, room.ID, newTitle, lessonIDs, now); err != nil {
		s.logger.Error("delete classroom failed", zap.Uint("id", id), zap.Error(err))
		return apperr.Store(err)
	}

	return nil
}

func (s *classroomService) getLive(ctx context.Context, id uint) (*model.Classroom, error) {
	room, err := s.repo.Classroom.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Classroom", "id", id)
		}
		s.logger.Error("get classroom failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return room, nil
}

func (s *classroomService) ensureTitleFree(ctx context.Context, title string) error {
	existing, err := s.repo.Classroom.GetByTitleAny(ctx, title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check classroom title failed", zap.Error(err))
		return apperr.Store(err)
	}
	if existing != nil {
		return apperr.NewConflict("classroom title %q is already taken", title)
	}
	return nil
}

// projection helpers

func classroomSummary(room *model.Classroom) dto.ClassroomSummary {
	return dto.ClassroomSummary{ID: room.ID, Title: room.Title}
}

func classroomDetail(room *model.Classroom) dto.ClassroomDetail {
	return dto.ClassroomDetail{
		ClassroomSummary: classroomSummary(room),
		CreatedAt:        formatTime(room.CreatedAt),
		UpdatedAt:        formatTime(room.UpdatedAt),
	}
}

func classroomSummaries(rooms []model.Classroom) []dto.ClassroomSummary {
	result := make([]dto.ClassroomSummary, 0, len(rooms))
	for i := range rooms {
		result = append(result, classroomSummary(&rooms[i]))
	}
	return result
}

func classroomDetails(rooms []model.Classroom) []dto.ClassroomDetail {
	result := make([]dto.ClassroomDetail, 0, len(rooms))
	for i := range rooms {
		result = append(result, classroomDetail(&rooms[i]))
	}
	return result
}
