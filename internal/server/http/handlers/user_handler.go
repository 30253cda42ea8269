package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/server/http/dto"
	"github.com/antech/configstore/internal/server/http/middleware"
)

// UserHandler serves profile and account administration endpoints.
type UserHandler struct {
	facade AuthFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade AuthFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(CurrentUser(c)))
}

// DeleteMe handles DELETE /api/users/me.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.facade.DeleteAccount(c.Request.Context(), CurrentUser(c)); err != nil {
		writeDomainError(c, err)
		return
	}
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.ListUsers(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, response)
}

// ChangeRole handles PATCH /api/admin/users/:id/role.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ChangeRole(c.Request.Context(), id, model.Role(req.Role)); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
