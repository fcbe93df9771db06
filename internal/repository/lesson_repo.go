package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
)

// LessonFilters are the optional search predicates; present fields are ANDed
// as equality predicates.
type LessonFilters struct {
	ClassroomID    *uint
	SubjectID      *uint
	GroupID        *uint
	TeacherID      *uint
	LessonStatusID *uint
}

// LessonRepository is the lesson data-access interface.
type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	GetByID(ctx context.Context, id uint) (*model.Lesson, error)
	List(ctx context.Context, skip, take int) ([]model.Lesson, error)
	ListWithFilters(ctx context.Context, filters *LessonFilters, skip, take int) ([]model.Lesson, error)
	// ListByOwner loads live lessons of one timetable owner ordered by start
	// time; used by the export service.
	ListByGroup(ctx context.Context, groupID uint) ([]model.Lesson, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]model.Lesson, error)
	Update(ctx context.Context, lesson *model.Lesson) error
	SoftDelete(ctx context.Context, id uint, deletedAt time.Time) error

	// Live lesson ids per parent, loaded before a cascading soft delete.
	IDsByClassroom(ctx context.Context, classroomID uint) ([]uint, error)
	IDsBySubject(ctx context.Context, subjectID uint) ([]uint, error)
	IDsByGroup(ctx context.Context, groupID uint) ([]uint, error)
	IDsByTeacher(ctx context.Context, teacherID uint) ([]uint, error)
}

type lessonRepo struct {
	db *gorm.DB
}

// NewLessonRepo creates a LessonRepository instance.
func NewLessonRepo(db *gorm.DB) LessonRepository {
	return &lessonRepo{db: db}
}

func (r *lessonRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Classroom").
		Preload("Subject").
		Preload("Group").
		Preload("Teacher").
		Preload("LessonStatus")
}

func (r *lessonRepo) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *lessonRepo) GetByID(ctx context.Context, id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.preloaded(ctx).
		Where("id = ?", id).
		First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepo) List(ctx context.Context, skip, take int) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.preloaded(ctx).
		Order("id ASC").
		Offset(skip).Limit(take).
		Find(&lessons).Error
	return lessons, err
}

func (r *lessonRepo) ListWithFilters(ctx context.Context, filters *LessonFilters, skip, take int) ([]model.Lesson, error) {
	db := r.preloaded(ctx)

	if filters != nil {
		if filters.ClassroomID != nil {
			db = db.Where("classroom_id = ?", *filters.ClassroomID)
		}
		if filters.SubjectID != nil {
			db = db.Where("subject_id = ?", *filters.SubjectID)
		}
		if filters.GroupID != nil {
			db = db.Where("group_id = ?", *filters.GroupID)
		}
		if filters.TeacherID != nil {
			db = db.Where("teacher_id = ?", *filters.TeacherID)
		}
		if filters.LessonStatusID != nil {
			db = db.Where("lesson_status_id = ?", *filters.LessonStatusID)
		}
	}

	var lessons []model.Lesson
	err := db.Order("id ASC").
		Offset(skip).Limit(take).
		Find(&lessons).Error
	return lessons, err
}

func (r *lessonRepo) ListByGroup(ctx context.Context, groupID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.preloaded(ctx).
		Where("group_id = ?", groupID).
		Order("starts_at ASC").
		Find(&lessons).Error
	return lessons, err
}

func (r *lessonRepo) ListByTeacher(ctx context.Context, teacherID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.preloaded(ctx).
		Where("teacher_id = ?", teacherID).
		Order("starts_at ASC").
		Find(&lessons).Error
	return lessons, err
}

func (r *lessonRepo) Update(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Save(lesson).Error
}

func (r *lessonRepo) SoftDelete(ctx context.Context, id uint, deletedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Lesson{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"updated_at": deletedAt,
			"deleted_at": deletedAt,
		}).Error
}

func (r *lessonRepo) IDsByClassroom(ctx context.Context, classroomID uint) ([]uint, error) {
	return r.idsBy(ctx, "classroom_id", classroomID)
}

func (r *lessonRepo) IDsBySubject(ctx context.Context, subjectID uint) ([]uint, error) {
	return r.idsBy(ctx, "subject_id", subjectID)
}

func (r *lessonRepo) IDsByGroup(ctx context.Context, groupID uint) ([]uint, error) {
	return r.idsBy(ctx, "group_id", groupID)
}

func (r *lessonRepo) IDsByTeacher(ctx context.Context, teacherID uint) ([]uint, error) {
	return r.idsBy(ctx, "teacher_id", teacherID)
}

func (r *lessonRepo) idsBy(ctx context.Context, column string, value uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.Lesson{}).
		Where(column+" = ?", value).
		Pluck("id", &ids).Error
	return ids, err
}
