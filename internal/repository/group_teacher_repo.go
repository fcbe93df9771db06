package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/loxx3450/Schedule-App-sub000/internal/model"
)

// GroupTeacherRepository is the group-teacher association data-access
// interface. Lookups only see live rows; removal is a soft delete so the
// audit trail survives.
type GroupTeacherRepository interface {
	Create(ctx context.Context, assoc *model.GroupTeacher) error
	GetByPair(ctx context.Context, groupID, teacherID uint) (*model.GroupTeacher, error)
	ListByTeacher(ctx context.Context, teacherID uint, skip, take int) ([]model.GroupTeacher, error)
	ListByGroup(ctx context.Context, groupID uint, skip, take int) ([]model.GroupTeacher, error)
	SoftDelete(ctx context.Context, id uint, deletedAt time.Time) error
}

type groupTeacherRepo struct {
	db *gorm.DB
}

// NewGroupTeacherRepo creates a GroupTeacherRepository instance.
func NewGroupTeacherRepo(db *gorm.DB) GroupTeacherRepository {
	return &groupTeacherRepo{db: db}
}

func (r *groupTeacherRepo) Create(ctx context.Context, assoc *model.GroupTeacher) error {
	return r.db.WithContext(ctx).Create(assoc).Error
}

func (r *groupTeacherRepo) GetByPair(ctx context.Context, groupID, teacherID uint) (*model.GroupTeacher, error) {
	var assoc model.GroupTeacher
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND teacher_id = ?", groupID, teacherID).
		First(&assoc).Error
	if err != nil {
		return nil, err
	}
	return &assoc, nil
}

func (r *groupTeacherRepo) ListByTeacher(ctx context.Context, teacherID uint, skip, take int) ([]model.GroupTeacher, error) {
	var assocs []model.GroupTeacher
	err := r.db.WithContext(ctx).
		Preload("Group").
		Where("teacher_id = ?", teacherID).
		Order("id ASC").
		Offset(skip).Limit(take).
		Find(&assocs).Error
	return assocs, err
}

func (r *groupTeacherRepo) ListByGroup(ctx context.Context, groupID uint, skip, take int) ([]model.GroupTeacher, error) {
	var assocs []model.GroupTeacher
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Where("group_id = ?", groupID).
		Order("id ASC").
		Offset(skip).Limit(take).
		Find(&assocs).Error
	return assocs, err
}

func (r *groupTeacherRepo) SoftDelete(ctx context.Context, id uint, deletedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.GroupTeacher{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"updated_at": deletedAt,
			"deleted_at": deletedAt,
		}).Error
}
