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

// SubjectService is the subject business interface.
type SubjectService interface {
	List(ctx context.Context, skip, take int) ([]dto.SubjectSummary, error)
	ListDetails(ctx context.Context, skip, take int) ([]dto.SubjectDetail, error)
	ListByFilter(ctx context.Context, req *dto.SubjectFilterRequest) ([]dto.SubjectSummary, error)
	ListByFilterDetails(ctx context.Context, req *dto.SubjectFilterRequest) ([]dto.SubjectDetail, error)
	GetByID(ctx context.Context, id uint) (*dto.SubjectSummary, error)
	GetDetailsByID(ctx context.Context, id uint) (*dto.SubjectDetail, error)
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectSummary, error)
	Update(ctx context.Context, id uint, req *dto.UpdateSubjectRequest) (*dto.SubjectSummary, error)
	Delete(ctx context.Context, id uint) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService creates a SubjectService instance.
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

func (s *subjectService) List(ctx context.Context, skip, take int) ([]dto.SubjectSummary, error) {
	subjects, err := s.repo.Subject.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list subjects failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return subjectSummaries(subjects), nil
}

func (s *subjectService) ListDetails(ctx context.Context, skip, take int) ([]dto.SubjectDetail, error) {
	subjects, err := s.repo.Subject.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list subjects failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return subjectDetails(subjects), nil
}

func (s *subjectService) ListByFilter(ctx context.Context, req *dto.SubjectFilterRequest) ([]dto.SubjectSummary, error) {
	subjects, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return subjectSummaries(subjects), nil
}

func (s *subjectService) ListByFilterDetails(ctx context.Context, req *dto.SubjectFilterRequest) ([]dto.SubjectDetail, error) {
	subjects, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return subjectDetails(subjects), nil
}

func (s *subjectService) filtered(ctx context.Context, req *dto.SubjectFilterRequest) ([]model.Subject, error) {
	if req.Title != nil {
		subject, err := s.repo.Subject.GetByTitle(ctx, *req.Title)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewNotFound("Subject", "title", *req.Title)
			}
			s.logger.Error("get subject by title failed", zap.Error(err))
			return nil, apperr.Store(err)
		}
		return []model.Subject{*subject}, nil
	}

	filters := &repository.SubjectFilters{
		TitlePattern: req.TitlePattern,
		TeacherID:    req.TeacherID,
	}
	subjects, err := s.repo.Subject.ListWithFilters(ctx, filters, req.GetSkip(), req.GetTake())
	if err != nil {
		s.logger.Error("filter subjects failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return subjects, nil
}

func (s *subjectService) GetByID(ctx context.Context, id uint) (*dto.SubjectSummary, error) {
	subject, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := subjectSummary(subject)
	return &summary, nil
}

func (s *subjectService) GetDetailsByID(ctx context.Context, id uint) (*dto.SubjectDetail, error) {
	subject, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := subjectDetail(subject)
	return &detail, nil
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectSummary, error) {
	if err := s.ensureTitleFree(ctx, req.Title); err != nil {
		return nil, err
	}

	subject := &model.Subject{Title: req.Title}
	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("subject title %q is already taken", req.Title)
		}
		s.logger.Error("create subject failed", zap.Error(err))
		return nil, apperr.Store(err)
	}

	summary := subjectSummary(subject)
	return &summary, nil
}

func (s *subjectService) Update(ctx context.Context, id uint, req *dto.UpdateSubjectRequest) (*dto.SubjectSummary, error) {
	subject, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != subject.Title {
		if err := s.ensureTitleFree(ctx, *req.Title); err != nil {
			return nil, err
		}
		subject.Title = *req.Title
	}

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("subject title %q is already taken", subject.Title)
		}
		s.logger.Error("update subject failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}

	summary := subjectSummary(subject)
	return &summary, nil
}

// Delete soft-deletes the subject and cascades to every live lesson taught in
// it, all in one transaction.
func (s *subjectService) Delete(ctx context.Context, id uint) error {
	subject, err := s.getLive(ctx, id)
	if err != nil {
		return err
	}

	lessonIDs, err := s.repo.Lesson.IDsBySubject(ctx, subject.ID)
	if err != nil {
		s.logger.Error("load dependent lessons failed", zap.Uint("subject_id", id), zap.Error(err))
		return apperr.Store(err)
	}

	now := time.Now()
	newTitle := deletedName(subject.Title, now)
	if err := s.repo.Subject.SoftDeleteCascade(ctx, subject.ID, newTitle, lessonIDs, now); err != nil {
		s.logger.Error("delete subject failed", zap.Uint("id", id), zap.Error(err))
		return apperr.Store(err)
	}

	return nil
}

func (s *subjectService) getLive(ctx context.Context, id uint) (*model.Subject, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Subject", "id", id)
		}
		s.logger.Error("get subject failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return subject, nil
}

func (s *subjectService) ensureTitleFree(ctx context.Context, title string) error {
	existing, err := s.repo.Subject.GetByTitleAny(ctx, title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check subject title failed", zap.Error(err))
		return apperr.Store(err)
	}
	if existing != nil {
		return apperr.NewConflict("subject title %q is already taken", title)
	}
	return nil
}

// projection helpers

func subjectSummary(subject *model.Subject) dto.SubjectSummary {
	return dto.SubjectSummary{ID: subject.ID, Title: subject.Title}
}

func subjectDetail(subject *model.Subject) dto.SubjectDetail {
	return dto.SubjectDetail{
		SubjectSummary: subjectSummary(subject),
		CreatedAt:      formatTime(subject.CreatedAt),
		UpdatedAt:      formatTime(subject.UpdatedAt),
	}
}

func subjectSummaries(subjects []model.Subject) []dto.SubjectSummary {
	result := make([]dto.SubjectSummary, 0, len(subjects))
	for i := range subjects {
		result = append(result, subjectSummary(&subjects[i]))
	}
	return result
}

func subjectDetails(subjects []model.Subject) []dto.SubjectDetail {
	result := make([]dto.SubjectDetail, 0, len(subjects))
	for i := range subjects {
		result = append(result, subjectDetail(&subjects[i]))
	}
	return result
}
