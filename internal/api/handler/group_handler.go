package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// GroupHandler serves the student group endpoints.
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// ListGroups handles GET /api/v1/groups.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		groups, err := h.groupSvc.ListDetails(c.Request.Context(), req.GetSkip(), req.GetTake())
		if err != nil {
			h.handleGroupError(c, err)
			return
		}
		response.OKPage(c, groups, req.GetSkip(), req.GetTake())
		return
	}

	groups, err := h.groupSvc.List(c.Request.Context(), req.GetSkip(), req.GetTake())
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OKPage(c, groups, req.GetSkip(), req.GetTake())
}

// SearchGroups handles GET /api/v1/groups/search.
func (h *GroupHandler) SearchGroups(c *gin.Context) {
	var req dto.GroupFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	if req.WithDetails {
		groups, err := h.groupSvc.ListByFilterDetails(c.Request.Context(), &req)
		if err != nil {
			h.handleGroupError(c, err)
			return
		}
		response.OKPage(c, groups, req.GetSkip(), req.GetTake())
		return
	}

	groups, err := h.groupSvc.ListByFilter(c.Request.Context(), &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OKPage(c, groups, req.GetSkip(), req.GetTake())
}

// GetGroup handles GET /api/v1/groups/:id.
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if c.Query("with_details") == "true" {
		group, err := h.groupSvc.GetDetailsByID(c.Request.Context(), id)
		if err != nil {
			h.handleGroupError(c, err)
			return
		}
		response.OK(c, group)
		return
	}

	group, err := h.groupSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, group)
}

// CreateGroup handles POST /api/v1/groups.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	group, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.Created(c, group)
}

// UpdateGroup handles PUT /api/v1/groups/:id.
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	group, err := h.groupSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, group)
}

// DeleteGroup handles DELETE /api/v1/groups/:id.
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.groupSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *GroupHandler) handleGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		response.BadRequest(c, 12002, err.Error())
	default:
		response.InternalError(c)
	}
}
