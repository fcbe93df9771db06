package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
)

// ClassroomFilters are the optional search predicates; nil fields are omitted
// from the query entirely.
type ClassroomFilters struct {
	TitlePattern *string
}

// ClassroomRepository is the classroom data-access interface.
type ClassroomRepository interface {
	Create(ctx context.Context, room *model.Classroom) error
	GetByID(ctx context.Context, id uint) (*model.Classroom, error)
	GetByTitle(ctx context.Context, title string) (*model.Classroom, error)
	// GetByTitleAny also sees soft-deleted rows; used for uniqueness checks,
	// since a soft-deleted title still blocks reuse until it is rewritten.
	GetByTitleAny(ctx context.Context, title string) (*model.Classroom, error)
	List(ctx context.Context, skip, take int) ([]model.Classroom, error)
	ListWithFilters(ctx context.Context, filters *ClassroomFilters, skip, take int) ([]model.Classroom, error)
	Update(ctx context.Context, room *model.Classroom) error
	// SoftDeleteCascade rewrites the title, soft-deletes the classroom and its
	// live lessons in one transaction.
	SoftDeleteCascade(ctx context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error
}

type classroomRepo struct {
	db *gorm.DB
}

// NewClassroomRepo creates a ClassroomRepository instance.
func NewClassroomRepo(db *gorm.DB) ClassroomRepository {
	return &classroomRepo{db: db}
}

func (r *classroomRepo) Create(ctx context.Context, room *model.Classroom) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *classroomRepo) GetByID(ctx context.Context, id uint) (*model.Classroom, error) {
	var room model.Classroom
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *classroomRepo) GetByTitle(ctx context.Context, title string) (*model.Classroom, error) {
	var room model.Classroom
	err := r.db.WithContext(ctx).
		Where("title = ?", title).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *classroomRepo) GetByTitleAny(ctx context.Context, title string) (*model.Classroom, error) {
	var room model.Classroom
	err := r.db.WithContext(ctx).Unscoped().
		Where("title = ?", title).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *classroomRepo) List(ctx context.Context, skip, take int) ([]model.Classroom, error) {
	var rooms []model.Classroom
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).Limit(take).
		Find(&rooms).Error
	return rooms, err
}

func (r *classroomRepo) ListWithFilters(ctx context.Context, filters *ClassroomFilters, skip, take int) ([]model.Classroom, error) {
	db := r.db.WithContext(ctx).Model(&model.Classroom{})

	if filters != nil && filters.TitlePattern != nil {
		db = db.Where("title ILIKE ?", "%"+*filters.TitlePattern+"%")
	}

	var rooms []model.Classroom
	err := db.Order("id ASC").
		Offset(skip).Limit(take).
		Find(&rooms).Error
	return rooms, err
}

func (r *classroomRepo) Update(ctx context.Context, room *model.Classroom) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *classroomRepo) SoftDeleteCascade(ctx context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Classroom{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":      newTitle,
				"updated_at": deletedAt,
				"deleted_at": deletedAt,
			}).Error; err != nil {
			return err
		}
		if len(lessonIDs) > 0 {
			// Default scope keeps already soft-deleted lessons untouched.
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
