package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/model"
	"github.com/loxx3450/Schedule-App-sub000/internal/repository"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
)

// TeacherService is the teacher business interface.
type TeacherService interface {
	List(ctx context.Context, skip, take int) ([]dto.TeacherSummary, error)
	ListDetails(ctx context.Context, skip, take int) ([]dto.TeacherDetail, error)
	ListByFilter(ctx context.Context, req *dto.TeacherFilterRequest) ([]dto.TeacherSummary, error)
	ListByFilterDetails(ctx context.Context, req *dto.TeacherFilterRequest) ([]dto.TeacherDetail, error)
	GetByID(ctx context.Context, id uint) (*dto.TeacherSummary, error)
	GetDetailsByID(ctx context.Context, id uint) (*dto.TeacherDetail, error)
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherSummary, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTeacherRequest) (*dto.TeacherSummary, error)
	Delete(ctx context.Context, id uint) error
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService creates a TeacherService instance.
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

func (s *teacherService) List(ctx context.Context, skip, take int) ([]dto.TeacherSummary, error) {
	teachers, err := s.repo.Teacher.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return teacherSummaries(teachers), nil
}

func (s *teacherService) ListDetails(ctx context.Context, skip, take int) ([]dto.TeacherDetail, error) {
	teachers, err := s.repo.Teacher.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	result := make([]dto.TeacherDetail, 0, len(teachers))
	for i := range teachers {
		detail, err := s.detailWithSubjects(ctx, teachers[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, *detail)
	}
	return result, nil
}

func (s *teacherService) ListByFilter(ctx context.Context, req *dto.TeacherFilterRequest) ([]dto.TeacherSummary, error) {
	teachers, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return teacherSummaries(teachers), nil
}

func (s *teacherService) ListByFilterDetails(ctx context.Context, req *dto.TeacherFilterRequest) ([]dto.TeacherDetail, error) {
	teachers, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TeacherDetail, 0, len(teachers))
	for i := range teachers {
		detail, err := s.detailWithSubjects(ctx, teachers[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, *detail)
	}
	return result, nil
}

// filtered resolves the search query; a present username wins and is an
// exact-match existence lookup.
func (s *teacherService) filtered(ctx context.Context, req *dto.TeacherFilterRequest) ([]model.Teacher, error) {
	if req.Username != nil {
		teacher, err := s.repo.Teacher.GetByUsername(ctx, *req.Username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewNotFound("Teacher", "username", *req.Username)
			}
			s.logger.Error("get teacher by username failed", zap.Error(err))
			return nil, apperr.Store(err)
		}
		return []model.Teacher{*teacher}, nil
	}

	filters := &repository.TeacherFilters{
		SubjectID:   req.SubjectID,
		NamePattern: req.NamePattern,
	}
	teachers, err := s.repo.Teacher.ListWithFilters(ctx, filters, req.GetSkip(), req.GetTake())
	if err != nil {
		s.logger.Error("filter teachers failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return teachers, nil
}

func (s *teacherService) GetByID(ctx context.Context, id uint) (*dto.TeacherSummary, error) {
	teacher, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := teacherSummary(teacher)
	return &summary, nil
}

func (s *teacherService) GetDetailsByID(ctx context.Context, id uint) (*dto.TeacherDetail, error) {
	return s.detailWithSubjects(ctx, id)
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherSummary, error) {
	if err := s.ensureUsernameFree(ctx, req.Username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	teacher := &model.Teacher{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Age:          req.Age,
	}
	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("username %q is already taken", req.Username)
		}
		s.logger.Error("create teacher failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	summary := teacherSummary(teacher)
	return &summary, nil
}

func (s *teacherService) Update(ctx context.Context, id uint, req *dto.UpdateTeacherRequest) (*dto.TeacherSummary, error) {
	teacher, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != teacher.Username {
		if err := s.ensureUsernameFree(ctx, *req.Username); err != nil {
			return nil, err
		}
		teacher.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("hash password failed", zap.Error(err))
			return nil, apperr.Store(err)
		}
		teacher.PasswordHash = string(hash)
	}
	if req.FirstName != nil {
		teacher.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		teacher.LastName = *req.LastName
	}
	if req.Age != nil {
		teacher.Age = *req.Age
	}

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("username %q is already taken", teacher.Username)
		}
		s.logger.Error("update teacher failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}

	summary := teacherSummary(teacher)
	return &summary, nil
}

func (s *teacherService) Delete(ctx context.Context, id uint) error {
	teacher, err := s.getLive(ctx, id)
	if err != nil {
		return err
	}

	lessonIDs, err := s.repo.Lesson.IDsByTeacher(ctx, teacher.ID)
	if err != nil {
		s.logger.Error("load dependent lessons failed", zap.Uint("teacher_id", id), zap.Error(err))
		return apperr.Store(err)
	}

	now := time.Now()
	newUsername := deletedName(teacher.Username, now)
	if err := s.repo.Teacher.SoftDeleteCascade(ctx, teacher.ID, newUsername, lessonIDs, now); err != nil {
		s.logger.Error("delete teacher failed", zap.Uint("id", id), zap.Error(err))
		return apperr.Store(err)
	}

	return nil
}

func (s *teacherService) getLive(ctx context.Context, id uint) (*model.Teacher, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Teacher", "id", id)
		}
		s.logger.Error("get teacher failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return teacher, nil
}

func (s *teacherService) detailWithSubjects(ctx context.Context, id uint) (*dto.TeacherDetail, error) {
	teacher, err := s.repo.Teacher.GetByIDWithSubjects(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Teacher", "id", id)
		}
		s.logger.Error("get teacher failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}

	detail := dto.TeacherDetail{
		TeacherSummary: teacherSummary(teacher),
		Subjects:       subjectSummaries(teacher.Subjects),
		CreatedAt:      formatTime(teacher.CreatedAt),
		UpdatedAt:      formatTime(teacher.UpdatedAt),
	}
	return &detail, nil
}

func (s *teacherService) ensureUsernameFree(ctx context.Context, username string) error {
	existing, err := s.repo.Teacher.GetByUsernameAny(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check username failed", zap.Error(err))
		return apperr.Store(err)
	}
	if existing != nil {
		return apperr.NewConflict("username %q is already taken", username)
	}
	return nil
}

// projection helpers

func teacherSummary(teacher *model.Teacher) dto.TeacherSummary {
	return dto.TeacherSummary{
		ID:        teacher.ID,
		Username:  teacher.Username,
		FirstName: teacher.FirstName,
		LastName:  teacher.LastName,
		Age:       teacher.Age,
	}
}

func teacherSummaries(teachers []model.Teacher) []dto.TeacherSummary {
	result := make([]dto.TeacherSummary, 0, len(teachers))
	for i := range teachers {
		result = append(result, teacherSummary(&teachers[i]))
	}
	return result
}
