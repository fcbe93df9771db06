package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
)

// SubjectFilters are the optional search predicates.
type SubjectFilters struct {
	TitlePattern *string
	TeacherID    *uint
}

// SubjectRepository is the subject data-access interface.
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id uint) (*model.Subject, error)
	GetByTitle(ctx context.Context, title string) (*model.Subject, error)
	GetByTitleAny(ctx context.Context, title string) (*model.Subject, error)
	List(ctx context.Context, skip, take int) ([]model.Subject, error)
	ListWithFilters(ctx context.Context, filters *SubjectFilters, skip, take int) ([]model.Subject, error)
	Update(ctx context.Context, subject *model.Subject) error
	SoftDeleteCascade(ctx context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo creates a SubjectRepository instance.
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) GetByTitle(ctx context.Context, title string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("title = ?", title).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) GetByTitleAny(ctx context.Context, title string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).Unscoped().
		Where("title = ?", title).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) List(ctx context.Context, skip, take int) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).Limit(take).
		Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) ListWithFilters(ctx context.Context, filters *SubjectFilters, skip, take int) ([]model.Subject, error) {
	db := r.db.WithContext(ctx).Model(&model.Subject{})

	if filters != nil {
		if filters.TitlePattern != nil {
			db = db.Where("title ILIKE ?", "%"+*filters.TitlePattern+"%")
		}
		if filters.TeacherID != nil {
			db = db.
				Joins("JOIN teacher_subjects ts ON ts.subject_id = subjects.id").
				Where("ts.teacher_id = ?", *filters.TeacherID)
		}
	}

	var subjects []model.Subject
	err := db.Order("subjects.id ASC").
		Offset(skip).Limit(take).
		Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) Update(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *subjectRepo) SoftDeleteCascade(ctx context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Subject{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":      newTitle,
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
