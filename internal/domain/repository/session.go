package repository

import (
	"context"
	"time"

	"github.com/antech/configstore/internal/domain/model"
)

// SessionRepository manages opaque session tokens with sliding expiry.
type SessionRepository interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) (*model.Session, error)
	// Authenticate resolves a live token to its user and, as a side effect
	// of the same statement, extends the expiry to now plus window. An
	// unknown or expired token yields ErrUnauthenticated.
	Authenticate(ctx context.Context, token string, window time.Duration) (*model.User, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID int64) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// PasswordResetRepository stores short-lived password recovery codes.
type PasswordResetRepository interface {
	Create(ctx context.Context, userID int64, code string, expiresAt time.Time) error
	GetActive(ctx context.Context, userID int64, code string) (*model.PasswordResetRequest, error)
	Delete(ctx context.Context, id int64) error
	PurgeExpired(ctx context.Context) (int64, error)
}
