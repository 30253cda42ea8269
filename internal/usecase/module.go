package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/antech/configstore/internal/config"
	"github.com/antech/configstore/internal/domain/repository"
	pkgAuth "github.com/antech/configstore/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewCatalogUseCase,
	NewConfigurationUseCase,
	NewPricingUseCase,
	NewOrderUseCase,
)

type authParams struct {
	fx.In

	Users    repository.UserRepository
	Sessions repository.SessionRepository
	Resets   repository.PasswordResetRepository
	Hasher   pkgAuth.PasswordHasher
	Tokens   pkgAuth.TokenSource
	Sender   CodeSender
	Config   *config.Config
	Logger   *slog.Logger
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(
		p.Users, p.Sessions, p.Resets,
		p.Hasher, p.Tokens, p.Sender,
		p.Config.SessionTTL, p.Config.ResetCodeTTL,
		p.Logger,
	)
}
