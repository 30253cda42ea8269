package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/server/http/dto"
	"github.com/antech/configstore/internal/server/http/middleware"
)

// AuthHandler processes registration, login and password recovery.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, req.FullName, req.Phone, req.Address)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/users/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, session, err := h.facade.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.SetAuthCookie(c, session.Token)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout handles POST /api/users/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.facade.Logout(c.Request.Context(), CurrentToken(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusOK)
}

// RequestReset handles POST /api/users/password/reset.
func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ConfirmReset handles POST /api/users/password/confirm.
func (h *AuthHandler) ConfirmReset(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ConfirmPasswordReset(c.Request.Context(), req.Email, req.Code, req.Password); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    user.Phone,
		Address:  user.Address,
		Role:     string(user.Role),
	}
}
