package model

// Group maps to groups.
type Group struct {
	ID    uint   `gorm:"primaryKey"                                            json:"id"`
	Title string `gorm:"type:varchar(50);not null;uniqueIndex:uq_groups_title" json:"title"`
	AuditFields

	Lessons []Lesson `gorm:"foreignKey:GroupID" json:"lessons,omitempty"`
}

func (Group) TableName() string { return "groups" }
