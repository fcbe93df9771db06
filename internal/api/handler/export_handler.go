package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar"
)

// ExportHandler serves the timetable download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportGroupTimetable handles GET /api/v1/export/groups/:id/timetable.
func (h *ExportHandler) ExportGroupTimetable(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.GroupTimetableXLSX(c.Request.Context(), groupID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.sendFile(c, filename, xlsxContentType, buf.Bytes())
}

// ExportTeacherTimetable handles GET /api/v1/export/teachers/:id/timetable.
func (h *ExportHandler) ExportTeacherTimetable(c *gin.Context) {
	teacherID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.TeacherTimetableXLSX(c.Request.Context(), teacherID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.sendFile(c, filename, xlsxContentType, buf.Bytes())
}

// ExportGroupCalendar handles GET /api/v1/export/groups/:id/calendar.
func (h *ExportHandler) ExportGroupCalendar(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.GroupCalendarICS(c.Request.Context(), groupID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.sendFile(c, filename, icsContentType, buf.Bytes())
}

// ExportTeacherCalendar handles GET /api/v1/export/teachers/:id/calendar.
func (h *ExportHandler) ExportTeacherCalendar(c *gin.Context) {
	teacherID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.TeacherCalendarICS(c.Request.Context(), teacherID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.sendFile(c, filename, icsContentType, buf.Bytes())
}

func (h *ExportHandler) sendFile(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 18001, err.Error())
	default:
		response.InternalError(c)
	}
}
