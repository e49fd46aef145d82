package bootstrap

import (
	"time"

	"roomescape/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the zone reservation dates are interpreted in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.App.Location()
}
