package model

// LessonStatus maps to lesson_statuses. It is a closed, administrator-defined
// vocabulary: no audit columns and no deletion.
type LessonStatus struct {
	ID          uint   `gorm:"primaryKey"                                                           json:"id"`
	Description string `gorm:"type:varchar(50);not null;uniqueIndex:uq_lesson_statuses_description" json:"description"`
}

func (LessonStatus) TableName() string { return "lesson_statuses" }
