package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
)

// LessonStatusRepository is the lesson-status data-access interface. The
// vocabulary is closed: statuses are never deleted.
type LessonStatusRepository interface {
	Create(ctx context.Context, status *model.LessonStatus) error
	GetByID(ctx context.Context, id uint) (*model.LessonStatus, error)
	GetByDescription(ctx context.Context, description string) (*model.LessonStatus, error)
	List(ctx context.Context) ([]model.LessonStatus, error)
	Update(ctx context.Context, status *model.LessonStatus) error
}

type lessonStatusRepo struct {
	db *gorm.DB
}

// NewLessonStatusRepo creates a LessonStatusRepository instance.
func NewLessonStatusRepo(db *gorm.DB) LessonStatusRepository {
	return &lessonStatusRepo{db: db}
}

func (r *lessonStatusRepo) Create(ctx context.Context, status *model.LessonStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *lessonStatusRepo) GetByID(ctx context.Context, id uint) (*model.LessonStatus, error) {
	var status model.LessonStatus
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *lessonStatusRepo) GetByDescription(ctx context.Context, description string) (*model.LessonStatus, error) {
	var status model.LessonStatus
	err := r.db.WithContext(ctx).
		Where("description = ?", description).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *lessonStatusRepo) List(ctx context.Context) ([]model.LessonStatus, error) {
	var statuses []model.LessonStatus
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&statuses).Error
	return statuses, err
}

func (r *lessonStatusRepo) Update(ctx context.Context, status *model.LessonStatus) error {
	return r.db.WithContext(ctx).Save(status).Error
}
