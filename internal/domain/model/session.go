package model

import "time"

// Session maps an opaque token to a user with a sliding expiry. Every
// successful authorized call pushes ExpiresAt forward by the configured
// window; a session is never revoked except by expiry or logout.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// PasswordResetRequest holds a short-lived confirmation code mailed to
// the user during password recovery.
type PasswordResetRequest struct {
	ID        int64
	UserID    int64
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
}
