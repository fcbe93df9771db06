package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
)

// GroupFilters are the optional search predicates.
type GroupFilters struct {
	TeacherID *uint
}

// GroupRepository is the group data-access interface.
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	GetByID(ctx context.Context, id uint) (*model.Group, error)
	GetByTitle(ctx context.Context, title string) (*model.Group, error)
	GetByTitleAny(ctx context.Context, title string) (*model.Group, error)
	List(ctx context.Context, skip, take int) ([]model.Group, error)
	ListWithFilters(ctx context.Context, filters *GroupFilters, skip, take int) ([]model.Group, error)
	Update(ctx context.Context, group *model.Group) error
	SoftDeleteCascade(ctx context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error
}

type groupRepo struct {
	db *gorm.DB
}

// NewGroupRepo creates a GroupRepository instance.
func NewGroupRepo(db *gorm.DB) GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) Create(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepo) GetByID(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) GetByTitle(ctx context.Context, title string) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).
		Where("title = ?", title).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) GetByTitleAny(ctx context.Context, title string) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).Unscoped().
		Where("title = ?", title).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) List(ctx context.Context, skip, take int) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).Limit(take).
		Find(&groups).Error
	return groups, err
}

func (r *groupRepo) ListWithFilters(ctx context.Context, filters *GroupFilters, skip, take int) ([]model.Group, error) {
	db := r.db.WithContext(ctx).Model(&model.Group{})

	if filters != nil && filters.TeacherID != nil {
		db = db.
			Joins("JOIN group_teachers gt ON gt.group_id = groups.id AND gt.deleted_at IS NULL").
			Where("gt.teacher_id = ?", *filters.TeacherID)
	}

	var groups []model.Group
	err := db.Order("groups.id ASC").
		Offset(skip).Limit(take).
		Find(&groups).Error
	return groups, err
}

func (r *groupRepo) Update(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepo) SoftDeleteCascade(ctx context.Context, id uint, newTitle string, lessonIDs []uint, deletedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Group{}).
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
