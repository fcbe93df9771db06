package model

// Subject maps to subjects.
type Subject struct {
	ID    uint   `gorm:"primaryKey"                                              json:"id"`
	Title string `gorm:"type:varchar(60);not null;uniqueIndex:uq_subjects_title" json:"title"`
	AuditFields

	Lessons  []Lesson  `gorm:"foreignKey:SubjectID"            json:"lessons,omitempty"`
	Teachers []Teacher `gorm:"many2many:teacher_subjects"      json:"teachers,omitempty"`
}

func (Subject) TableName() string { return "subjects" }
