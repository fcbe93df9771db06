package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/loxx3450/Schedule-App-sub000/internal/dto"
	"github.com/loxx3450/Schedule-App-sub000/internal/service"
	"github.com/loxx3450/Schedule-App-sub000/pkg/apperr"
	"github.com/loxx3450/Schedule-App-sub000/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 10002, "invalid username or password")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tokens)
}

// Refresh handles POST /api/v1/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	tokens, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			response.Unauthorized(c, 10002, "invalid refresh token")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tokens)
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c, 10002, "missing bearer token")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			response.Unauthorized(c, 10002, "invalid access token")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}

	teacher, err := h.authSvc.Me(c.Request.Context(), teacherID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c, 14001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, teacher)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
