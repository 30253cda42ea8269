package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/antech/configstore/internal/adapter/mailer"
	"github.com/antech/configstore/internal/app"
	"github.com/antech/configstore/internal/config"
	"github.com/antech/configstore/internal/domain/repository"
	"github.com/antech/configstore/internal/storage/postgres"
	"github.com/antech/configstore/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		SessionTTL:      time.Hour,
		SessionSweep:    time.Minute,
		ResetCodeTTL:    15 * time.Minute,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	sessionRepo := test.NewSessionRepositoryStub()
	sessionRepo.Users = userRepo.ByID
	resetRepo := test.NewPasswordResetRepositoryStub()
	catalogRepo := test.NewCatalogRepositoryStub()
	configurationRepo := test.NewConfigurationRepositoryStub()
	orderRepo := test.NewOrderRepositoryStub()

	var facade *app.StoreFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.SessionRepository(sessionRepo)),
			fx.Replace(repository.PasswordResetRepository(resetRepo)),
			fx.Replace(repository.CatalogRepository(catalogRepo)),
			fx.Replace(repository.ConfigurationRepository(configurationRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(mailer.Sender(&test.CodeSenderStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected store facade instance")
	}
}
