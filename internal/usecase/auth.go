package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/domain/repository"
	pkgAuth "github.com/antech/configstore/internal/pkg/auth"
)

// CodeSender delivers password reset codes. Delivery failures never fail
// the reset request itself.
type CodeSender interface {
	SendResetCode(ctx context.Context, email, code string) error
}

// AuthUseCase handles account lifecycle, sessions and the authorization gate.
type AuthUseCase struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	resets     repository.PasswordResetRepository
	hasher     pkgAuth.PasswordHasher
	tokens     pkgAuth.TokenSource
	sender     CodeSender
	sessionTTL time.Duration
	resetTTL   time.Duration
	logger     *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	resets repository.PasswordResetRepository,
	hasher pkgAuth.PasswordHasher,
	tokens pkgAuth.TokenSource,
	sender CodeSender,
	sessionTTL, resetTTL time.Duration,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:      users,
		sessions:   sessions,
		resets:     resets,
		hasher:     hasher,
		tokens:     tokens,
		sender:     sender,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
		logger:     logger,
	}
}

// Register creates a new ordinary user account.
func (u *AuthUseCase) Register(ctx context.Context, email, password, fullName, phone, address string) (*model.User, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if !ValidateEmail(email) || !ValidatePhone(phone) {
		return nil, domainErrors.ErrInvalid
	}
	if password == "" || strings.TrimSpace(fullName) == "" {
		return nil, domainErrors.ErrInvalid
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, &model.User{
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		Address:      address,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
}

// Login validates credentials and opens a session. The login is matched
// as a phone number when it looks like one, as an email otherwise.
func (u *AuthUseCase) Login(ctx context.Context, login, password string) (*model.User, *model.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, nil, domainErrors.ErrInvalidCredentials
	}

	var (
		usr *model.User
		err error
	)
	if ValidatePhone(login) {
		usr, err = u.users.GetByPhone(ctx, login)
	} else {
		usr, err = u.users.GetByEmail(ctx, login)
	}
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil, domainErrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, nil, domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.NewToken()
	if err != nil {
		return nil, nil, err
	}

	session, err := u.sessions.Create(ctx, usr.ID, token, time.Now().Add(u.sessionTTL))
	if err != nil {
		return nil, nil, err
	}
	return usr, session, nil
}

// Authorize is the single gate in front of every protected operation. It
// resolves the token, renews the sliding expiry as a side effect of the
// lookup, and enforces the required role. An empty required role only
// demands a live session. Administrator satisfies any requirement.
func (u *AuthUseCase) Authorize(ctx context.Context, token string, required model.Role) (*model.User, error) {
	if token == "" {
		return nil, domainErrors.ErrUnauthenticated
	}

	usr, err := u.sessions.Authenticate(ctx, token, u.sessionTTL)
	if err != nil {
		return nil, err
	}

	if required != "" && !usr.Role.Satisfies(required) {
		return nil, domainErrors.ErrForbidden
	}
	return usr, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	return u.sessions.DeleteByToken(ctx, token)
}

// DeleteAccount removes the caller's account with all owned data.
func (u *AuthUseCase) DeleteAccount(ctx context.Context, caller *model.User) error {
	return u.users.Delete(ctx, caller.ID)
}

// RequestPasswordReset stores a recovery code for the account and hands
// it to the mail gateway. The operation succeeds even when delivery fails.
func (u *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := u.tokens.NewCode()
	if err != nil {
		return err
	}

	if err := u.resets.Create(ctx, usr.ID, code, time.Now().Add(u.resetTTL)); err != nil {
		return err
	}

	if err := u.sender.SendResetCode(ctx, usr.Email, code); err != nil {
		u.logger.Error("reset code delivery failed",
			slog.String("email", usr.Email), slog.String("error", err.Error()))
	}
	return nil
}

// ConfirmPasswordReset exchanges a valid code for a new password and
// revokes every live session of the account.
func (u *AuthUseCase) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	if newPassword == "" {
		return domainErrors.ErrInvalid
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	req, err := u.resets.GetActive(ctx, usr.ID, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrInvalid
		}
		return err
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := u.users.UpdatePassword(ctx, usr.ID, hash); err != nil {
		return err
	}
	if err := u.resets.Delete(ctx, req.ID); err != nil {
		return err
	}
	return u.sessions.DeleteByUser(ctx, usr.ID)
}

// ListUsers returns every account. Administrator surface.
func (u *AuthUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// ChangeRole assigns one of the two known roles. Administrator surface.
func (u *AuthUseCase) ChangeRole(ctx context.Context, userID int64, role model.Role) error {
	if role != model.RoleUser && role != model.RoleAdministrator {
		return domainErrors.ErrInvalid
	}
	return u.users.UpdateRole(ctx, userID, role)
}
