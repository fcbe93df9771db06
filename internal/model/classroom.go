package model

// Classroom maps to classrooms.
type Classroom struct {
	ID    uint   `gorm:"primaryKey"                     json:"id"`
	Title string `gorm:"type:varchar(40);not null;uniqueIndex:uq_classrooms_title" json:"title"`
	AuditFields

	Lessons []Lesson `gorm:"foreignKey:ClassroomID" json:"lessons,omitempty"`
}

func (Classroom) TableName() string { return "classrooms" }
