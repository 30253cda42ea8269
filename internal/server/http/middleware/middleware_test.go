package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authorizerStub resolves tokens via overrides.
type authorizerStub struct {
	User *model.User
	Err  error
	Fn   func(ctx context.Context, token string, required model.Role) (*model.User, error)
}

func (s authorizerStub) Authorize(ctx context.Context, token string, required model.Role) (*model.User, error) {
	if s.Fn != nil {
		return s.Fn(ctx, token, required)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: 1, Role: model.RoleUser}, nil
}

func TestAuthRequired(t *testing.T) {
	router := gin.New()
	router.Use(AuthRequired(authorizerStub{Err: domainErrors.ErrUnauthenticated}))
	router.GET("/", func(c *gin.Context) {})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(authorizerStub{Err: context.DeadlineExceeded}))
	router.GET("/", func(c *gin.Context) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var stored *model.User
	user := &model.User{ID: 42, Role: model.RoleUser}
	router = gin.New()
	router.Use(AuthRequired(authorizerStub{User: user}))
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(UserContextKey); ok {
			stored = v.(*model.User)
		}
	})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stored == nil || stored.ID != 42 {
		t.Fatalf("user not stored in context: %+v", stored)
	}
}

func TestRequireRoleForwardsRequirement(t *testing.T) {
	var askedRole model.Role
	stub := authorizerStub{Fn: func(ctx context.Context, token string, required model.Role) (*model.User, error) {
		askedRole = required
		if required == model.RoleAdministrator {
			return nil, domainErrors.ErrForbidden
		}
		return &model.User{ID: 1, Role: model.RoleUser}, nil
	}}

	router := gin.New()
	router.Use(RequireRole(stub, model.RoleAdministrator))
	router.GET("/", func(c *gin.Context) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
	if askedRole != model.RoleAdministrator {
		t.Fatalf("required role not forwarded: %q", askedRole)
	}
}

func TestExtractTokenSources(t *testing.T) {
	var seenToken string
	stub := authorizerStub{Fn: func(ctx context.Context, token string, required model.Role) (*model.User, error) {
		seenToken = token
		return &model.User{ID: 1}, nil
	}}

	router := gin.New()
	router.Use(AuthRequired(stub))
	router.GET("/", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if seenToken != "header-token" {
		t.Fatalf("bearer token not extracted: %q", seenToken)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie-token"})
	router.ServeHTTP(httptest.NewRecorder(), req)
	if seenToken != "cookie-token" {
		t.Fatalf("cookie token not extracted: %q", seenToken)
	}
}

func TestDecompressRequest(t *testing.T) {
	var received string
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		received = string(body)
	})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"ping":"pong"}`)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	zw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if received != `{"ping":"pong"}` {
		t.Fatalf("body not decompressed: %q", received)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken gzip, got %d", resp.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	out := buf.String()
	if !strings.Contains(out, "/ping") || !strings.Contains(out, "http request") {
		t.Fatalf("request not logged: %s", out)
	}
}
