// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"mangosense/internal/services"
	"mangosense/internal/transport/httpdto"
	mango_errors "mangosense/pkg/errors"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the login session id.
const SessionCookieName = "sid"

// AccountHandler handles mobile app registration and login endpoints.
type AccountHandler struct {
	service *services.AccountService
}

func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register handles user registration.
func (h *AccountHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid data format."))
		return
	}

	n := req.Normalize()
	userID, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		FirstName:       n.FirstName,
		LastName:        n.LastName,
		Address:         n.Address,
		Email:           n.Email,
		Password:        n.Password,
		ConfirmPassword: n.ConfirmPassword,
	})
	if err != nil {
		if errs, ok := mango_errors.AsValidationErrors(err); ok {
			c.JSON(http.StatusBadRequest, httpdto.NewValidationErrorResponse(errs))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("An unexpected error occurred."))
		return
	}

	c.JSON(http.StatusOK, httpdto.RegisterResponse{
		Success: true,
		Message: "Account created successfully! You may now log in",
		UserID:  userID.String(),
		Note:    "Address received but not stored (requires profile model)",
	})
}

// Login handles credential authentication and establishes a session cookie.
func (h *AccountHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid data format."))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeLoginError(c, err)
		return
	}

	c.SetCookie(SessionCookieName, res.SessionID, 0, "/", "", false, true)
	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Success: true,
		Message: "Login successful.",
		User: httpdto.UserDTO{
			ID:        res.User.ID.String(),
			Email:     res.User.Email,
			FirstName: res.User.FirstName,
			LastName:  res.User.LastName,
			FullName:  res.User.FullName(),
		},
	})
}

// Logout terminates the active session.
func (h *AccountHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("You are not logged in."))
		return
	}

	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, mango_errors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("You are not logged in."))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("An unexpected error occurred."))
		return
	}

	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, httpdto.LogoutResponse{Success: true, Message: "Logout successful."})
}

func writeLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mango_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Email and password are required."))
	case errors.Is(err, mango_errors.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Please enter a valid email address."))
	case errors.Is(err, mango_errors.ErrInactiveAccount):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Your account is deactivated. Please contact support."))
	case errors.Is(err, mango_errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Invalid email or password."))
	default:
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("An unexpected error occurred."))
	}
}
