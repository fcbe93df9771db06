package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// SubjectHandler serves the subject endpoints.
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// ListSubjects handles GET /api/v1/subjects.
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		subjects, err := h.subjectSvc.ListDetails(c.Request.Context(), req.GetSkip(), req.GetTake())
		if err != nil {
			h.handleSubjectError(c, err)
			return
		}
		response.OKPage(c, subjects, req.GetSkip(), req.GetTake())
		return
	}

	subjects, err := h.subjectSvc.List(c.Request.Context(), req.GetSkip(), req.GetTake())
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}
	response.OKPage(c, subjects, req.GetSkip(), req.GetTake())
}

// SearchSubjects handles GET /api/v1/subjects/search.
func (h *SubjectHandler) SearchSubjects(c *gin.Context) {
	var req dto.SubjectFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		subjects, err := h.subjectSvc.ListByFilterDetails(c.Request.Context(), &req)
		if err != nil {
			h.handleSubjectError(c, err)
			return
		}
		response.OKPage(c, subjects, req.GetSkip(), req.GetTake())
		return
	}

	subjects, err := h.subjectSvc.ListByFilter(c.Request.Context(), &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}
	response.OKPage(c, subjects, req.GetSkip(), req.GetTake())
}

// GetSubject handles GET /api/v1/subjects/:id.
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if c.Query("with_details") == "true" {
		subject, err := h.subjectSvc.GetDetailsByID(c.Request.Context(), id)
		if err != nil {
			h.handleSubjectError(c, err)
			return
		}
		response.OK(c, subject)
		return
	}

	subject, err := h.subjectSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}
	response.OK(c, subject)
}

// CreateSubject handles POST /api/v1/subjects.
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	subject, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}
	response.Created(c, subject)
}

// UpdateSubject handles PUT /api/v1/subjects/:id.
func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	subject, err := h.subjectSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}
	response.OK(c, subject)
}

// DeleteSubject handles DELETE /api/v1/subjects/:id. Live lessons of the
// subject are soft-deleted along with it.
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.subjectSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleSubjectError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *SubjectHandler) handleSubjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		response.BadRequest(c, 13002, err.Error())
	default:
		response.InternalError(c)
	}
}
