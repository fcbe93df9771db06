package dto

import "time"

// CreateLessonRequest creates a lesson. The ends_at > starts_at invariant is
// enforced by the storage check constraint, not here.
type CreateLessonRequest struct {
	ClassroomID    uint      `json:"classroom_id"     binding:"required"`
	SubjectID      uint      `json:"subject_id"       binding:"required"`
	GroupID        uint      `json:"group_id"         binding:"required"`
	TeacherID      uint      `json:"teacher_id"       binding:"required"`
	LessonStatusID uint      `json:"lesson_status_id" binding:"required"`
	AdditionalInfo *string   `json:"additional_info"  binding:"omitempty,max=500"`
	StartsAt       time.Time `json:"starts_at"        binding:"required"`
	EndsAt         time.Time `json:"ends_at"          binding:"required"`
}

// UpdateLessonRequest updates a lesson; absent fields are left untouched.
type UpdateLessonRequest struct {
	ClassroomID    *uint      `json:"classroom_id"`
	SubjectID      *uint      `json:"subject_id"`
	GroupID        *uint      `json:"group_id"`
	TeacherID      *uint      `json:"teacher_id"`
	LessonStatusID *uint      `json:"lesson_status_id"`
	AdditionalInfo *string    `json:"additional_info" binding:"omitempty,max=500"`
	StartsAt       *time.Time `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at"`
}

// LessonFilterRequest is the lesson search query: present fields are ANDed as
// equality predicates.
type LessonFilterRequest struct {
	PageRequest
	WithDetails    bool  `form:"with_details"`
	ClassroomID    *uint `form:"classroom_id"`
	SubjectID      *uint `form:"subject_id"`
	GroupID        *uint `form:"group_id"`
	TeacherID      *uint `form:"teacher_id"`
	LessonStatusID *uint `form:"lesson_status_id"`
}

// LessonSummary is the summary projection with every side resolved to its own
// summary shape.
type LessonSummary struct {
	ID             uint                  `json:"id"`
	Classroom      *ClassroomSummary     `json:"classroom,omitempty"`
	Subject        *SubjectSummary       `json:"subject,omitempty"`
	Group          *GroupSummary         `json:"group,omitempty"`
	Teacher        *TeacherSummary       `json:"teacher,omitempty"`
	Status         *LessonStatusResponse `json:"status,omitempty"`
	AdditionalInfo *string               `json:"additional_info,omitempty"`
	StartsAt       time.Time             `json:"starts_at"`
	EndsAt         time.Time             `json:"ends_at"`
}

// LessonDetail is the detailed projection.
type LessonDetail struct {
	LessonSummary
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
