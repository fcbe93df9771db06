package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// GroupTeacherHandler serves the group-teacher assignment endpoints.
type GroupTeacherHandler struct {
	groupTeacherSvc service.GroupTeacherService
}

// NewGroupTeacherHandler creates a GroupTeacherHandler.
func NewGroupTeacherHandler(groupTeacherSvc service.GroupTeacherService) *GroupTeacherHandler {
	return &GroupTeacherHandler{groupTeacherSvc: groupTeacherSvc}
}

// AddGroupTeacher handles POST /api/v1/groups/:id/teachers/:teacher_id.
func (h *GroupTeacherHandler) AddGroupTeacher(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	teacherID, ok := parseIDParam(c, "teacher_id")
	if !ok {
		return
	}

	assoc, err := h.groupTeacherSvc.Add(c.Request.Context(), groupID, teacherID)
	if err != nil {
		h.handleGroupTeacherError(c, err)
		return
	}
	response.Created(c, assoc)
}

// RemoveGroupTeacher handles DELETE /api/v1/groups/:id/teachers/:teacher_id.
func (h *GroupTeacherHandler) RemoveGroupTeacher(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	teacherID, ok := parseIDParam(c, "teacher_id")
	if !ok {
		return
	}

	if err := h.groupTeacherSvc.Remove(c.Request.Context(), groupID, teacherID); err != nil {
		h.handleGroupTeacherError(c, err)
		return
	}
	response.OK(c, nil)
}

// GetGroupTeacher handles GET /api/v1/groups/:id/teachers/:teacher_id.
func (h *GroupTeacherHandler) GetGroupTeacher(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	teacherID, ok := parseIDParam(c, "teacher_id")
	if !ok {
		return
	}

	assoc, err := h.groupTeacherSvc.Get(c.Request.Context(), groupID, teacherID)
	if err != nil {
		h.handleGroupTeacherError(c, err)
		return
	}
	response.OK(c, assoc)
}

// ListGroupTeachers handles GET /api/v1/groups/:id/teachers.
func (h *GroupTeacherHandler) ListGroupTeachers(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	assocs, err := h.groupTeacherSvc.ListByGroup(c.Request.Context(), groupID, req.GetSkip(), req.GetTake())
	if err != nil {
		h.handleGroupTeacherError(c, err)
		return
	}
	response.OKPage(c, assocs, req.GetSkip(), req.GetTake())
}

// ListTeacherGroups handles GET /api/v1/teachers/:id/groups.
func (h *GroupTeacherHandler) ListTeacherGroups(c *gin.Context) {
	teacherID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	assocs, err := h.groupTeacherSvc.ListByTeacher(c.Request.Context(), teacherID, req.GetSkip(), req.GetTake())
	if err != nil {
		h.handleGroupTeacherError(c, err)
		return
	}
	response.OKPage(c, assocs, req.GetSkip(), req.GetTake())
}

func (h *GroupTeacherHandler) handleGroupTeacherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 17001, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		response.BadRequest(c, 17002, err.Error())
	default:
		response.InternalError(c)
	}
}
