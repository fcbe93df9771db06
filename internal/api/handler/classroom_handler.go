package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// ClassroomHandler serves the classroom endpoints.
type ClassroomHandler struct {
	classroomSvc service.ClassroomService
}

// NewClassroomHandler creates a ClassroomHandler.
func NewClassroomHandler(classroomSvc service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{classroomSvc: classroomSvc}
}

// ListClassrooms handles GET /api/v1/classrooms.
func (h *ClassroomHandler) ListClassrooms(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		rooms, err := h.classroomSvc.ListDetails(c.Request.Context(), req.GetSkip(), req.GetTake())
		if err != nil {
			h.handleClassroomError(c, err)
			return
		}
		response.OKPage(c, rooms, req.GetSkip(), req.GetTake())
		return
	}

	rooms, err := h.classroomSvc.List(c.Request.Context(), req.GetSkip(), req.GetTake())
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}
	response.OKPage(c, rooms, req.GetSkip(), req.GetTake())
}

// SearchClassrooms handles GET /api/v1/classrooms/search.
func (h *ClassroomHandler) SearchClassrooms(c *gin.Context) {
	var req dto.ClassroomFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		rooms, err := h.classroomSvc.ListByFilterDetails(c.Request.Context(), &req)
		if err != nil {
			h.handleClassroomError(c, err)
			return
		}
		response.OKPage(c, rooms, req.GetSkip(), req.GetTake())
		return
	}

	rooms, err := h.classroomSvc.ListByFilter(c.Request.Context(), &req)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}
	response.OKPage(c, rooms, req.GetSkip(), req.GetTake())
}

// GetClassroom handles GET /api/v1/classrooms/:id.
func (h *ClassroomHandler) GetClassroom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if c.Query("with_details") == "true" {
		room, err := h.classroomSvc.GetDetailsByID(c.Request.Context(), id)
		if err != nil {
			h.handleClassroomError(c, err)
			return
		}
		response.OK(c, room)
		return
	}

	room, err := h.classroomSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}
	response.OK(c, room)
}

// CreateClassroom handles POST /api/v1/classrooms.
func (h *ClassroomHandler) CreateClassroom(c *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	room, err := h.classroomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}
	response.Created(c, room)
}

// UpdateClassroom handles PUT /api/v1/classrooms/:id.
func (h *ClassroomHandler) UpdateClassroom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	room, err := h.classroomSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}
	response.OK(c, room)
}

// DeleteClassroom handles DELETE /api/v1/classrooms/:id.
func (h *ClassroomHandler) DeleteClassroom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.classroomSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleClassroomError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ClassroomHandler) handleClassroomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 11001, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		response.BadRequest(c, 11002, err.Error())
	default:
		response.InternalError(c)
	}
}
