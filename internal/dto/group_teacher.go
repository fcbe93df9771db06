package dto

// GroupTeacherResponse projects an association row. Only the side that was
// not used for the query is populated, so listing a teacher's groups returns
// group summaries and vice versa.
type GroupTeacherResponse struct {
	ID        uint            `json:"id"`
	GroupID   uint            `json:"group_id"`
	TeacherID uint            `json:"teacher_id"`
	Group     *GroupSummary   `json:"group,omitempty"`
	Teacher   *TeacherSummary `json:"teacher,omitempty"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}
