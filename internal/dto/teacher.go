package dto

// CreateTeacherRequest creates a teacher account.
type CreateTeacherRequest struct {
	Username  string `json:"username"   binding:"required,min=8,max=20"`
	Password  string `json:"password"   binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name"  binding:"required,min=1,max=50"`
	Age       int    `json:"age"        binding:"required,gte=18,lte=80"`
}

// UpdateTeacherRequest updates a teacher; absent fields are left untouched.
type UpdateTeacherRequest struct {
	Username  *string `json:"username"   binding:"omitempty,min=8,max=20"`
	Password  *string `json:"password"   binding:"omitempty,min=8,max=72"`
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=1,max=50"`
	Age       *int    `json:"age"        binding:"omitempty,gte=18,lte=80"`
}

// TeacherFilterRequest is the teacher search query. A present username takes
// precedence and is resolved as an exact-match existence lookup.
type TeacherFilterRequest struct {
	PageRequest
	WithDetails bool    `form:"with_details"`
	Username    *string `form:"username"`
	SubjectID   *uint   `form:"subject_id"`
	NamePattern *string `form:"name_pattern"`
}

// TeacherSummary is the summary projection. The password hash never leaves
// the service layer.
type TeacherSummary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
}

// TeacherDetail is the detailed projection, including the subject set.
type TeacherDetail struct {
	TeacherSummary
	Subjects  []SubjectSummary `json:"subjects"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}
