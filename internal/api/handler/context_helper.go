package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// MustGetTeacherID extracts the authenticated teacher id injected by the JWT
// middleware. On failure a 401 is written and the caller should return.
func MustGetTeacherID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("teacher_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "not authenticated")
		return 0, false
	}
	return id, true
}

// parseIDParam parses the :id path segment. On failure a 400 is written and
// the caller should return.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id64 == 0 {
		response.BadRequest(c, 10001, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id64), true
}
