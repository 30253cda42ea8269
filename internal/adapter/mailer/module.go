package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/antech/configstore/internal/config"
)

// Module exposes the code sender implementation to the fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	if p.Config.MailGatewayAddress == "" {
		return NewLogSender(p.Logger), nil
	}
	return NewHTTPSender(p.Config.MailGatewayAddress, p.Logger)
}
