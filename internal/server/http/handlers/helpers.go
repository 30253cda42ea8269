package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user from the gin context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// CurrentToken extracts the presented session token from the gin context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(middleware.TokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}

// writeDomainError maps a domain error to its HTTP status.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrUnauthenticated):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrEmptyConfiguration), errors.Is(err, domainErrors.ErrInvalid):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}
