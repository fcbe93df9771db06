package model

// GroupTeacher is the auditable association "this teacher is assigned to this
// group". A (group_id, teacher_id) pair is unique among live rows only, so a
// removed association can be re-added while the old row keeps the audit trail.
type GroupTeacher struct {
	ID        uint `gorm:"primaryKey"     json:"id"`
	GroupID   uint `gorm:"not null;index" json:"group_id"`
	TeacherID uint `gorm:"not null;index" json:"teacher_id"`
	AuditFields

	Group   *Group   `gorm:"foreignKey:GroupID"   json:"group,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (GroupTeacher) TableName() string { return "group_teachers" }
