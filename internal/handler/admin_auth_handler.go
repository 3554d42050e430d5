package handler

import (
	"errors"
	"net/http"

	"mangosense/internal/services"
	"mangosense/internal/transport/httpdto"
	mango_errors "mangosense/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AdminAuthHandler handles the admin console token endpoints.
type AdminAuthHandler struct {
	service *services.AdminAuthService
}

func NewAdminAuthHandler(service *services.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: service}
}

// Login mints a token pair for a privileged account.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req httpdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid JSON data"))
		return
	}

	pair, u, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, mango_errors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Username and password are required"))
		case errors.Is(err, mango_errors.ErrForbidden):
			c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("Access denied. Admin privileges required."))
		case errors.Is(err, mango_errors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Invalid credentials"))
		default:
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Server error"))
		}
		return
	}

	c.JSON(http.StatusOK, httpdto.AdminLoginResponse{
		Success: true,
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User: httpdto.AdminUserDTO{
			ID:          u.ID.String(),
			Username:    u.Email,
			IsSuperuser: u.IsSuperuser,
			Email:       u.Email,
		},
	})
}

// Refresh derives a new access token from a refresh token.
func (h *AdminAuthHandler) Refresh(c *gin.Context) {
	var req httpdto.AdminRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid JSON data"))
		return
	}
	if req.Refresh == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Refresh token is required"))
		return
	}

	access, err := h.service.Refresh(req.Refresh)
	if err != nil {
		if errors.Is(err, mango_errors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Invalid refresh token"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Server error"))
		return
	}

	c.JSON(http.StatusOK, httpdto.AdminRefreshResponse{Success: true, Access: access})
}
