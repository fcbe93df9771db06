package dto

// CreateGroupRequest creates a student group.
type CreateGroupRequest struct {
	Title string `json:"title" binding:"required,min=1,max=20"`
}

// UpdateGroupRequest updates a group; absent fields are left untouched.
type UpdateGroupRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=20"`
}

// GroupFilterRequest is the group search query.
type GroupFilterRequest struct {
	PageRequest
	WithDetails bool    `form:"with_details"`
	Title       *string `form:"title"`
	TeacherID   *uint   `form:"teacher_id"`
}

// GroupSummary is the summary projection.
type GroupSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// GroupDetail is the detailed projection.
type GroupDetail struct {
	GroupSummary
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
