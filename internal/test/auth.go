package test

import (
	"context"
	"errors"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// TokenSourceStub issues predictable tokens and codes.
type TokenSourceStub struct {
	Token   string
	Code    string
	TokenFn func() (string, error)
	CodeFn  func() (string, error)
}

// NewToken returns the configured token.
func (s TokenSourceStub) NewToken() (string, error) {
	if s.TokenFn != nil {
		return s.TokenFn()
	}
	if s.Token != "" {
		return s.Token, nil
	}
	return "token", nil
}

// NewCode returns the configured recovery code.
func (s TokenSourceStub) NewCode() (string, error) {
	if s.CodeFn != nil {
		return s.CodeFn()
	}
	if s.Code != "" {
		return s.Code, nil
	}
	return "000000", nil
}

// CodeSenderStub records delivered reset codes.
type CodeSenderStub struct {
	Sent []SentCode
	Err  error
}

// SentCode is one recorded delivery.
type SentCode struct {
	Email string
	Code  string
}

// SendResetCode records the delivery or fails with the configured error.
func (s *CodeSenderStub) SendResetCode(ctx context.Context, email, code string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, SentCode{Email: email, Code: code})
	return nil
}
