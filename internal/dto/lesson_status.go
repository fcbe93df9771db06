package dto

// CreateLessonStatusRequest adds a status to the vocabulary.
type CreateLessonStatusRequest struct {
	Description string `json:"description" binding:"required,min=1,max=50"`
}

// UpdateLessonStatusRequest renames a status.
type UpdateLessonStatusRequest struct {
	Description *string `json:"description" binding:"omitempty,min=1,max=50"`
}

// LessonStatusResponse is the single read shape; statuses carry no audit
// fields, so there is no summary/detail split.
type LessonStatusResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
}
