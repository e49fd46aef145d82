package bootstrap

import (
	"context"
	"log/slog"

	"roomescape/internal/infra/tokenstore"
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/config"
	"roomescape/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewTokenRevoker,
	),
)

// NewTokenRevoker falls back to a no-op store when REDIS_ENABLED is false.
func NewTokenRevoker(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.TokenRevoker {
	if !cfg.Redis.Enabled {
		logger.Info("token revocation disabled", "reason", "REDIS_ENABLED=false")
		return tokenstore.NewNoopStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return tokenstore.NewRedisStore(client, clk)
}
