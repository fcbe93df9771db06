package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// LessonHandler serves the lesson endpoints.
type LessonHandler struct {
	lessonSvc service.LessonService
}

// NewLessonHandler creates a LessonHandler.
func NewLessonHandler(lessonSvc service.LessonService) *LessonHandler {
	return &LessonHandler{lessonSvc: lessonSvc}
}

// ListLessons handles GET /api/v1/lessons.
func (h *LessonHandler) ListLessons(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		lessons, err := h.lessonSvc.ListDetails(c.Request.Context(), req.GetSkip(), req.GetTake())
		if err != nil {
			h.handleLessonError(c, err)
			return
		}
		response.OKPage(c, lessons, req.GetSkip(), req.GetTake())
		return
	}

	lessons, err := h.lessonSvc.List(c.Request.Context(), req.GetSkip(), req.GetTake())
	if err != nil {
		h.handleLessonError(c, err)
		return
	}
	response.OKPage(c, lessons, req.GetSkip(), req.GetTake())
}

// SearchLessons handles GET /api/v1/lessons/search.
func (h *LessonHandler) SearchLessons(c *gin.Context) {
	var req dto.LessonFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		lessons, err := h.lessonSvc.ListByFilterDetails(c.Request.Context(), &req)
		if err != nil {
			h.handleLessonError(c, err)
			return
		}
		response.OKPage(c, lessons, req.GetSkip(), req.GetTake())
		return
	}

	lessons, err := h.lessonSvc.ListByFilter(c.Request.Context(), &req)
	if err != nil {
		h.handleLessonError(c, err)
		return
	}
	response.OKPage(c, lessons, req.GetSkip(), req.GetTake())
}

// GetLesson handles GET /api/v1/lessons/:id.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if c.Query("with_details") == "true" {
		lesson, err := h.lessonSvc.GetDetailsByID(c.Request.Context(), id)
		if err != nil {
			h.handleLessonError(c, err)
			return
		}
		response.OK(c, lesson)
		return
	}

	lesson, err := h.lessonSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleLessonError(c, err)
		return
	}
	response.OK(c, lesson)
}

// CreateLesson handles POST /api/v1/lessons.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req dto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	lesson, err := h.lessonSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleLessonError(c, err)
		return
	}
	response.Created(c, lesson)
}

// UpdateLesson handles PUT /api/v1/lessons/:id.
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	lesson, err := h.lessonSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleLessonError(c, err)
		return
	}
	response.OK(c, lesson)
}

// DeleteLesson handles DELETE /api/v1/lessons/:id.
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.lessonSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleLessonError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *LessonHandler) handleLessonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 15001, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		response.BadRequest(c, 15002, err.Error())
	default:
		response.InternalError(c)
	}
}
