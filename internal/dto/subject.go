package dto

// CreateSubjectRequest creates a subject.
type CreateSubjectRequest struct {
	Title string `json:"title" binding:"required,min=5,max=30,alphaspace"`
}

// UpdateSubjectRequest updates a subject; absent fields are left untouched.
type UpdateSubjectRequest struct {
	Title *string `json:"title" binding:"omitempty,min=5,max=30,alphaspace"`
}

// SubjectFilterRequest is the subject search query.
type SubjectFilterRequest struct {
	PageRequest
	WithDetails  bool    `form:"with_details"`
	Title        *string `form:"title"`
	TitlePattern *string `form:"title_pattern"`
	TeacherID    *uint   `form:"teacher_id"`
}

// SubjectSummary is the summary projection.
type SubjectSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// SubjectDetail is the detailed projection.
type SubjectDetail struct {
	SubjectSummary
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
