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

// LessonService is the lesson business interface.
type LessonService interface {
	List(ctx context.Context, skip, take int) ([]dto.LessonSummary, error)
	ListDetails(ctx context.Context, skip, take int) ([]dto.LessonDetail, error)
	ListByFilter(ctx context.Context, req *dto.LessonFilterRequest) ([]dto.LessonSummary, error)
	ListByFilterDetails(ctx context.Context, req *dto.LessonFilterRequest) ([]dto.LessonDetail, error)
	GetByID(ctx context.Context, id uint) (*dto.LessonSummary, error)
	GetDetailsByID(ctx context.Context, id uint) (*dto.LessonDetail, error)
	Create(ctx context.Context, req *dto.CreateLessonRequest) (*dto.LessonSummary, error)
	Update(ctx context.Context, id uint, req *dto.UpdateLessonRequest) (*dto.LessonSummary, error)
	Delete(ctx context.Context, id uint) error
}

type lessonService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLessonService creates a LessonService instance.
func NewLessonService(repo *repository.Repository, logger *zap.Logger) LessonService {
	return &lessonService{repo: repo, logger: logger}
}

func (s *lessonService) List(ctx context.Context, skip, take int) ([]dto.LessonSummary, error) {
	lessons, err := s.repo.Lesson.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list lessons failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return lessonSummaries(lessons), nil
}

func (s *lessonService) ListDetails(ctx context.Context, skip, take int) ([]dto.LessonDetail, error) {
	lessons, err := s.repo.Lesson.List(ctx, skip, take)
	if err != nil {
		s.logger.Error("list lessons failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return lessonDetails(lessons), nil
}

func (s *lessonService) ListByFilter(ctx context.Context, req *dto.LessonFilterRequest) ([]dto.LessonSummary, error) {
	lessons, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return lessonSummaries(lessons), nil
}

func (s *lessonService) ListByFilterDetails(ctx context.Context, req *dto.LessonFilterRequest) ([]dto.LessonDetail, error) {
	lessons, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	return lessonDetails(lessons), nil
}

func (s *lessonService) filtered(ctx context.Context, req *dto.LessonFilterRequest) ([]model.Lesson, error) {
	filters := &repository.LessonFilters{
		ClassroomID:    req.ClassroomID,
		SubjectID:      req.SubjectID,
		GroupID:        req.GroupID,
		TeacherID:      req.TeacherID,
		LessonStatusID: req.LessonStatusID,
	}
	lessons, err := s.repo.Lesson.ListWithFilters(ctx, filters, req.GetSkip(), req.GetTake())
	if err != nil {
		s.logger.Error("filter lessons failed", zap.Error(err))
		return nil, apperr.Store(err)
	}
	return lessons, nil
}

func (s *lessonService) GetByID(ctx context.Context, id uint) (*dto.LessonSummary, error) {
	lesson, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := lessonSummary(lesson)
	return &summary, nil
}

func (s *lessonService) GetDetailsByID(ctx context.Context, id uint) (*dto.LessonDetail, error) {
	lesson, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := lessonDetail(lesson)
	return &detail, nil
}

func (s *lessonService) Create(ctx context.Context, req *dto.CreateLessonRequest) (*dto.LessonSummary, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperr.NewConflict("lesson must end after it starts")
	}
	if err := s.validateReferences(ctx, req.ClassroomID, req.SubjectID, req.GroupID, req.TeacherID, req.LessonStatusID); err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		ClassroomID:    req.ClassroomID,
		SubjectID:      req.SubjectID,
		GroupID:        req.GroupID,
		TeacherID:      req.TeacherID,
		LessonStatusID: req.LessonStatusID,
		AdditionalInfo: req.AdditionalInfo,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
	}
	if err := s.repo.Lesson.Create(ctx, lesson); err != nil {
		return nil, s.mapWriteError(err, "create lesson failed")
	}

	// reload to fill the preloaded associations for the projection
	created, err := s.getLive(ctx, lesson.ID)
	if err != nil {
		return nil, err
	}
	summary := lessonSummary(created)
	return &summary, nil
}

func (s *lessonService) Update(ctx context.Context, id uint, req *dto.UpdateLessonRequest) (*dto.LessonSummary, error) {
	lesson, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClassroomID != nil {
		lesson.ClassroomID = *req.ClassroomID
	}
	if req.SubjectID != nil {
		lesson.SubjectID = *req.SubjectID
	}
	if req.GroupID != nil {
		lesson.GroupID = *req.GroupID
	}
	if req.TeacherID != nil {
		lesson.TeacherID = *req.TeacherID
	}
	if req.LessonStatusID != nil {
		lesson.LessonStatusID = *req.LessonStatusID
	}
	if req.AdditionalInfo != nil {
		lesson.AdditionalInfo = req.AdditionalInfo
	}
	if req.StartsAt != nil {
		lesson.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		lesson.EndsAt = *req.EndsAt
	}

	if !lesson.EndsAt.After(lesson.StartsAt) {
		return nil, apperr.NewConflict("lesson must end after it starts")
	}
	if err := s.validateReferences(ctx, lesson.ClassroomID, lesson.SubjectID, lesson.GroupID, lesson.TeacherID, lesson.LessonStatusID); err != nil {
		return nil, err
	}

	// Save would write the stale preloaded associations back; clear them first.
	lesson.Classroom = nil
	lesson.Subject = nil
	lesson.Group = nil
	lesson.Teacher = nil
	lesson.LessonStatus = nil

	if err := s.repo.Lesson.Update(ctx, lesson); err != nil {
		return nil, s.mapWriteError(err, "update lesson failed", zap.Uint("id", id))
	}

	updated, err := s.getLive(ctx, lesson.ID)
	if err != nil {
		return nil, err
	}
	summary := lessonSummary(updated)
	return &summary, nil
}

func (s *lessonService) Delete(ctx context.Context, id uint) error {
	lesson, err := s.getLive(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Lesson.SoftDelete(ctx, lesson.ID, time.Now()); err != nil {
		s.logger.Error("delete lesson failed", zap.Uint("id", id), zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}

func (s *lessonService) getLive(ctx context.Context, id uint) (*model.Lesson, error) {
	lesson, err := s.repo.Lesson.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Lesson", "id", id)
		}
		s.logger.Error("get lesson failed", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return lesson, nil
}

// validateReferences checks every referenced row is live so a missing one
// surfaces as a NotFound naming the entity instead of a raw FK violation.
func (s *lessonService) validateReferences(ctx context.Context, classroomID, subjectID, groupID, teacherID, statusID uint) error {
	if _, err := s.repo.Classroom.GetByID(ctx, classroomID); err != nil {
		return s.referenceError(err, "Classroom", classroomID)
	}
	if _, err := s.repo.Subject.GetByID(ctx, subjectID); err != nil {
		return s.referenceError(err, "Subject", subjectID)
	}
	if _, err := s.repo.Group.GetByID(ctx, groupID); err != nil {
		return s.referenceError(err, "Group", groupID)
	}
	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		return s.referenceError(err, "Teacher", teacherID)
	}
	if _, err := s.repo.LessonStatus.GetByID(ctx, statusID); err != nil {
		return s.referenceError(err, "LessonStatus", statusID)
	}
	return nil
}

func (s *lessonService) referenceError(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NewNotFound(entity, "id", id)
	}
	s.logger.Error("check lesson reference failed", zap.String("entity", entity), zap.Uint("id", id), zap.Error(err))
	return apperr.Store(err)
}

func (s *lessonService) mapWriteError(err error, msg string, fields ...zap.Field) error {
	switch {
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperr.NewConflict("lesson must end after it starts")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.NewConflict("lesson references a missing row")
	default:
		s.logger.Error(msg, append(fields, zap.Error(err))...)
		return apperr.Store(err)
	}
}

// projection helpers

func lessonSummary(lesson *model.Lesson) dto.LessonSummary {
	summary := dto.LessonSummary{
		ID:             lesson.ID,
		AdditionalInfo: lesson.AdditionalInfo,
		StartsAt:       lesson.StartsAt,
		EndsAt:         lesson.EndsAt,
	}
	if lesson.Classroom != nil {
		c := classroomSummary(lesson.Classroom)
		summary.Classroom = &c
	}
	if lesson.Subject != nil {
		sub := subjectSummary(lesson.Subject)
		summary.Subject = &sub
	}
	if lesson.Group != nil {
		g := groupSummary(lesson.Group)
		summary.Group = &g
	}
	if lesson.Teacher != nil {
		t := teacherSummary(lesson.Teacher)
		summary.Teacher = &t
	}
	if lesson.LessonStatus != nil {
		summary.Status = &dto.LessonStatusResponse{
			ID:          lesson.LessonStatus.ID,
			Description: lesson.LessonStatus.Description,
		}
	}
	return summary
}

func lessonSummaries(lessons []model.Lesson) []dto.LessonSummary {
	result := make([]dto.LessonSummary, 0, len(lessons))
	for i := range lessons {
		result = append(result, lessonSummary(&lessons[i]))
	}
	return result
}

func lessonDetail(lesson *model.Lesson) dto.LessonDetail {
	return dto.LessonDetail{
		LessonSummary: lessonSummary(lesson),
		CreatedAt:     formatTime(lesson.CreatedAt),
		UpdatedAt:     formatTime(lesson.UpdatedAt),
	}
}

func lessonDetails(lessons []model.Lesson) []dto.LessonDetail {
	result := make([]dto.LessonDetail, 0, len(lessons))
	for i := range lessons {
		result = append(result, lessonDetail(&lessons[i]))
	}
	return result
}
