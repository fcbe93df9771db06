package model

import "time"

// Lesson maps to lessons. It is the only entity referencing four soft-deletable
// parents; deleting any of them soft-deletes the lesson too. The time window
// invariant (ends_at > starts_at) is a database check constraint.
type Lesson struct {
	ID             uint      `gorm:"primaryKey"      json:"id"`
	ClassroomID    uint      `gorm:"not null;index"  json:"classroom_id"`
	SubjectID      uint      `gorm:"not null;index"  json:"subject_id"`
	GroupID        uint      `gorm:"not null;index"  json:"group_id"`
	TeacherID      uint      `gorm:"not null;index"  json:"teacher_id"`
	LessonStatusID uint      `gorm:"not null"        json:"lesson_status_id"`
	AdditionalInfo *string   `gorm:"type:text"       json:"additional_info,omitempty"`
	StartsAt       time.Time `gorm:"not null"        json:"starts_at"`
	EndsAt         time.Time `gorm:"not null"        json:"ends_at"`
	AuditFields

	Classroom    *Classroom    `gorm:"foreignKey:ClassroomID"    json:"classroom,omitempty"`
	Subject      *Subject      `gorm:"foreignKey:SubjectID"      json:"subject,omitempty"`
	Group        *Group        `gorm:"foreignKey:GroupID"        json:"group,omitempty"`
	Teacher      *Teacher      `gorm:"foreignKey:TeacherID"      json:"teacher,omitempty"`
	LessonStatus *LessonStatus `gorm:"foreignKey:LessonStatusID" json:"lesson_status,omitempty"`
}

func (Lesson) TableName() string { return "lessons" }
