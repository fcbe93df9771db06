package dto

// CreateClassroomRequest creates a classroom.
type CreateClassroomRequest struct {
	Title string `json:"title" binding:"required,min=3,max=10,titlechars"`
}

// UpdateClassroomRequest updates a classroom; absent fields are left untouched.
type UpdateClassroomRequest struct {
	Title *string `json:"title" binding:"omitempty,min=3,max=10,titlechars"`
}

// ClassroomFilterRequest is the classroom search query. A present title takes
// precedence and is resolved as an exact-match existence lookup.
type ClassroomFilterRequest struct {
	PageRequest
	WithDetails  bool    `form:"with_details"`
	Title        *string `form:"title"`
	TitlePattern *string `form:"title_pattern"`
}

// ClassroomSummary is the summary projection.
type ClassroomSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// ClassroomDetail is the detailed projection (summary plus audit timestamps).
type ClassroomDetail struct {
	ClassroomSummary
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
