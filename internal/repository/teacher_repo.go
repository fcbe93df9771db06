package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
)

// TeacherFilters are the optional search predicates.
type TeacherFilters struct {
	SubjectID   *uint
	NamePattern *string
}

// TeacherRepository is the teacher data-access interface, including the
// explicit teacher_subjects association-table operations.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id uint) (*model.Teacher, error)
	GetByIDWithSubjects(ctx context.Context, id uint) (*model.Teacher, error)
	GetByUsername(ctx context.Context, username string) (*model.Teacher, error)
	GetByUsernameAny(ctx context.Context, username string) (*model.Teacher, error)
	List(ctx context.Context, skip, take int) ([]model.Teacher, error)
	ListWithFilters(ctx context.Context, filters *TeacherFilters, skip, take int) ([]model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	SoftDeleteCascade(ctx context.Context, id uint, newUsername string, lessonIDs []uint, deletedAt time.Time) error

	HasSubject(ctx context.Context, teacherID, subjectID uint) (bool, error)
	// AddSubject inserts the association row and re-stamps the teacher's
	// updated_at in one transaction; RemoveSubject is the mirror operation.
	AddSubject(ctx context.Context, teacherID, subjectID uint, stampedAt time.Time) error
	RemoveSubject(ctx context.Context, teacherID, subjectID uint, stampedAt time.Time) error
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo creates a TeacherRepository instance.
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByIDWithSubjects(ctx context.Context, id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Subjects").
		Where("id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByUsername(ctx context.Context, username string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByUsernameAny(ctx context.Context, username string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).Unscoped().
		Where("username = ?", username).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) List(ctx context.Context, skip, take int) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).Limit(take).
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) ListWithFilters(ctx context.Context, filters *TeacherFilters, skip, take int) ([]model.Teacher, error) {
	db := r.db.WithContext(ctx).Model(&model.Teacher{})

	if filters != nil {
		if filters.SubjectID != nil {
			db = db.
				Joins("JOIN teacher_subjects ts ON ts.teacher_id = teachers.id").
				Where("ts.subject_id = ?", *filters.SubjectID)
		}
		if filters.NamePattern != nil {
			pattern := "%" + *filters.NamePattern + "%"
			db = db.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
		}
	}

	var teachers []model.Teacher
	err := db.Order("teachers.id ASC").
		Offset(skip).Limit(take).
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepo) SoftDeleteCascade(ctx context.Context, id uint, newUsername string, lessonIDs []uint, deletedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Teacher{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"username":   newUsername,
				"updated_at": deletedAt,
				"deleted_at": deletedAt,
			}).Error; err != nil {
			return err
		}
		if len(lessonIDs) > 0 {
			if err := tx.Model(&model.Lesson{}).
				Where("id IN ?", lessonIDs).
				Updates(map[string]interface{}{
					"updated_at": deletedAt,
					"deleted_at": deletedAt,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *teacherRepo) HasSubject(ctx context.Context, teacherID, subjectID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teacher_subjects").
		Where("teacher_id = ? AND subject_id = ?", teacherID, subjectID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *teacherRepo) AddSubject(ctx context.Context, teacherID, subjectID uint, stampedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"INSERT INTO teacher_subjects (teacher_id, subject_id) VALUES (?, ?)",
			teacherID, subjectID,
		).Error; err != nil {
			return err
		}
		return tx.Model(&model.Teacher{}).
			Where("id = ?", teacherID).
			Update("updated_at", stampedAt).Error
	})
}

func (r *teacherRepo) RemoveSubject(ctx context.Context, teacherID, subjectID uint, stampedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM teacher_subjects WHERE teacher_id = ? AND subject_id = ?",
			teacherID, subjectID,
		).Error; err != nil {
			return err
		}
		return tx.Model(&model.Teacher{}).
			Where("id = ?", teacherID).
			Update("updated_at", stampedAt).Error
	})
}
