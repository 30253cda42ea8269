package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
)

const (
	// UserContextKey is a gin context key for the authenticated user.
	UserContextKey = "currentUser"
	// TokenContextKey is a gin context key for the presented session token.
	TokenContextKey = "sessionToken"
	authCookieName  = "configstore_token"
)

// Authorizer resolves a session token into a user, enforcing a role.
type Authorizer interface {
	Authorize(ctx context.Context, token string, required model.Role) (*model.User, error)
}

// AuthRequired ensures a live session before the handler runs. Every
// pass through the gate renews the session's sliding expiry.
func AuthRequired(auth Authorizer) gin.HandlerFunc {
	return requireRole(auth, "")
}

// RequireRole gates the handler behind a role. Administrators pass any gate.
func RequireRole(auth Authorizer, role model.Role) gin.HandlerFunc {
	return requireRole(auth, role)
}

func requireRole(auth Authorizer, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		user, err := auth.Authorize(c.Request.Context(), token, role)
		if err != nil {
			switch {
			case errors.Is(err, domainErrors.ErrUnauthenticated):
				c.AbortWithStatus(http.StatusUnauthorized)
			case errors.Is(err, domainErrors.ErrForbidden):
				c.AbortWithStatus(http.StatusForbidden)
			default:
				c.AbortWithStatus(http.StatusInternalServerError)
			}
			return
		}

		c.Set(UserContextKey, user)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie drops the session token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
