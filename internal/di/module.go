package di

import (
	"go.uber.org/fx"

	"github.com/antech/configstore/internal/adapter/mailer"
	"github.com/antech/configstore/internal/app"
	"github.com/antech/configstore/internal/config"
	"github.com/antech/configstore/internal/domain/repository"
	"github.com/antech/configstore/internal/logger"
	pkgAuth "github.com/antech/configstore/internal/pkg/auth"
	"github.com/antech/configstore/internal/server/http/handlers"
	"github.com/antech/configstore/internal/server/http/router"
	"github.com/antech/configstore/internal/storage/postgres"
	"github.com/antech/configstore/internal/usecase"
)

// Module assembles the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		pkgAuth.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(sender mailer.Sender) usecase.CodeSender { return sender }),
		fx.Provide(func(catalog repository.CatalogRepository) usecase.PriceProvider { return catalog }),
		fx.Provide(func(facade *app.StoreFacade) handlers.StoreFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
