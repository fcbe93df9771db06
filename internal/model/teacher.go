package model

// Teacher maps to teachers. The password is stored as a bcrypt hash and never
// serialized.
type Teacher struct {
	ID           uint   `gorm:"primaryKey"                                                json:"id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex:uq_teachers_username" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"                                json:"-"`
	FirstName    string `gorm:"type:varchar(50);not null"                                 json:"first_name"`
	LastName     string `gorm:"type:varchar(50);not null"                                 json:"last_name"`
	Age          int    `gorm:"type:smallint;not null"                                    json:"age"`
	AuditFields

	Lessons  []Lesson  `gorm:"foreignKey:TeacherID"       json:"lessons,omitempty"`
	Subjects []Subject `gorm:"many2many:teacher_subjects" json:"subjects,omitempty"`
}

func (Teacher) TableName() string { return "teachers" }
