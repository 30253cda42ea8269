package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	tokenBytes = 32
	codeDigits = 6
)

// TokenSource produces opaque credentials. Tokens carry no embedded
// claims: validity, identity and expiry all live in the session store.
type TokenSource interface {
	// NewToken returns an unguessable session token.
	NewToken() (string, error)
	// NewCode returns a short numeric confirmation code for password recovery.
	NewCode() (string, error)
}

// RandomTokenSource draws tokens from crypto/rand.
type RandomTokenSource struct{}

// NewRandomTokenSource constructs RandomTokenSource.
func NewRandomTokenSource() *RandomTokenSource {
	return &RandomTokenSource{}
}

// NewToken returns a 32-byte random token in URL-safe base64.
func (RandomTokenSource) NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// NewCode returns a 6-digit random code, zero-padded.
func (RandomTokenSource) NewCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	n := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	return fmt.Sprintf("%06d", n%1000000), nil
}
