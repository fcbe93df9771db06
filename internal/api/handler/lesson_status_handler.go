package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// LessonStatusHandler serves the lesson status vocabulary. There is no delete
// endpoint; statuses stay referenceable forever.
type LessonStatusHandler struct {
	statusSvc service.LessonStatusService
}

// NewLessonStatusHandler creates a LessonStatusHandler.
func NewLessonStatusHandler(statusSvc service.LessonStatusService) *LessonStatusHandler {
	return &LessonStatusHandler{statusSvc: statusSvc}
}

// ListLessonStatuses handles GET /api/v1/lesson-statuses.
func (h *LessonStatusHandler) ListLessonStatuses(c *gin.Context) {
	statuses, err := h.statusSvc.List(c.Request.Context())
	if err != nil {
		h.handleLessonStatusError(c, err)
		return
	}
	response.OK(c, gin.H{"list": statuses})
}

// GetLessonStatus handles GET /api/v1/lesson-statuses/:id.
func (h *LessonStatusHandler) GetLessonStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status, err := h.statusSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleLessonStatusError(c, err)
		return
	}
	response.OK(c, status)
}

// CreateLessonStatus handles POST /api/v1/lesson-statuses.
func (h *LessonStatusHandler) CreateLessonStatus(c *gin.Context) {
	var req dto.CreateLessonStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	status, err := h.statusSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleLessonStatusError(c, err)
		return
	}
	response.Created(c, status)
}

// UpdateLessonStatus handles PUT /api/v1/lesson-statuses/:id.
func (h *LessonStatusHandler) UpdateLessonStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLessonStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	status, err := h.statusSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleLessonStatusError(c, err)
		return
	}
	response.OK(c, status)
}

func (h *LessonStatusHandler) handleLessonStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 16001, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		response.BadRequest(c, 16002, err.Error())
	default:
		response.InternalError(c)
	}
}
