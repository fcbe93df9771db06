package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// TeacherHandler serves the teacher endpoints, including the teacher-subject
// qualification sub-resource.
type TeacherHandler struct {
	teacherSvc     service.TeacherService
	teacherSubjSvc service.TeacherSubjectService
}

// NewTeacherHandler creates a TeacherHandler.
func NewTeacherHandler(teacherSvc service.TeacherService, teacherSubjSvc service.TeacherSubjectService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc, teacherSubjSvc: teacherSubjSvc}
}

// ListTeachers handles GET /api/v1/teachers.
func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		teachers, err := h.teacherSvc.ListDetails(c.Request.Context(), req.GetSkip(), req.GetTake())
		if err != nil {
			h.handleTeacherError(c, err)
			return
		}
		response.OKPage(c, teachers, req.GetSkip(), req.GetTake())
		return
	}

	teachers, err := h.teacherSvc.List(c.Request.Context(), req.GetSkip(), req.GetTake())
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OKPage(c, teachers, req.GetSkip(), req.GetTake())
}

// SearchTeachers handles GET /api/v1/teachers/search.
func (h *TeacherHandler) SearchTeachers(c *gin.Context) {
	var req dto.TeacherFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		teachers, err := h.teacherSvc.ListByFilterDetails(c.Request.Context(), &req)
		if err != nil {
			h.handleTeacherError(c, err)
			return
		}
		response.OKPage(c, teachers, req.GetSkip(), req.GetTake())
		return
	}

	teachers, err := h.teacherSvc.ListByFilter(c.Request.Context(), &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OKPage(c, teachers, req.GetSkip(), req.GetTake())
}

// GetTeacher handles GET /api/v1/teachers/:id.
func (h *TeacherHandler) GetTeacher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if c.Query("with_details") == "true" {
		teacher, err := h.teacherSvc.GetDetailsByID(c.Request.Context(), id)
		if err != nil {
			h.handleTeacherError(c, err)
			return
		}
		response.OK(c, teacher)
		return
	}

	teacher, err := h.teacherSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OK(c, teacher)
}

// CreateTeacher handles POST /api/v1/teachers.
func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.Created(c, teacher)
}

// UpdateTeacher handles PUT /api/v1/teachers/:id.
func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OK(c, teacher)
}

// DeleteTeacher handles DELETE /api/v1/teachers/:id. Live lessons taught by
// the teacher are soft-deleted along with them.
func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OK(c, nil)
}

// AddTeacherSubject handles POST /api/v1/teachers/:id/subjects/:subject_id.
func (h *TeacherHandler) AddTeacherSubject(c *gin.Context) {
	teacherID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	subjectID, ok := parseIDParam(c, "subject_id")
	if !ok {
		return
	}

	if err := h.teacherSubjSvc.Add(c.Request.Context(), teacherID, subjectID); err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.Created(c, nil)
}

// RemoveTeacherSubject handles DELETE /api/v1/teachers/:id/subjects/:subject_id.
func (h *TeacherHandler) RemoveTeacherSubject(c *gin.Context) {
	teacherID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	subjectID, ok := parseIDParam(c, "subject_id")
	if !ok {
		return
	}

	if err := h.teacherSubjSvc.Remove(c.Request.Context(), teacherID, subjectID); err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *TeacherHandler) handleTeacherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		response.BadRequest(c, 14002, err.Error())
	default:
		response.InternalError(c)
	}
}
