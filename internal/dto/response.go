package dto

// PageRequest carries the common pagination window. Defaults are (0, 20).
type PageRequest struct {
	Skip int `form:"skip" binding:"omitempty,min=0"`
	Take int `form:"take" binding:"omitempty,min=1,max=100"`
}

// GetSkip returns the offset with its default applied.
func (p *PageRequest) GetSkip() int {
	if p.Skip < 0 {
		return 0
	}
	return p.Skip
}

// GetTake returns the page size with its default applied.
func (p *PageRequest) GetTake() int {
	if p.Take <= 0 {
		return 20
	}
	return p.Take
}

// ListRequest is PageRequest plus the projection selector.
type ListRequest struct {
	PageRequest
	WithDetails bool `form:"with_details"`
}
