package bootstrap

import (
	"context"
	"log/slog"

	"roomescape/internal/infra/messaging"
	"roomescape/internal/pkg/config"
	"roomescape/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when AMQP_URL is empty.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.Broker.URL == "" {
		logger.Info("event publishing disabled", "reason", "AMQP_URL not set")
		return messaging.NewNoopPublisher(), nil
	}

	conn, ch, err := messaging.Dial(cfg.Broker.URL, cfg.Broker.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			_ = ch.Close()
			return conn.Close()
		},
	})

	logger.Info("event publishing enabled", "exchange", cfg.Broker.Exchange)
	return messaging.NewRabbitPublisher(ch, cfg.Broker.Exchange), nil
}
