package components

import (
	"time"

	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/jwt"
	"roomescape/internal/pkg/password"
	"roomescape/internal/usecase"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseBaseModule = fx.Module("usecase/base",
	fx.Provide(
		func(loc *time.Location) clock.Clock {
			return clock.NewSystemClock(loc)
		},
		password.NewBcrypt,
		fx.Annotate(
			func(b *password.Bcrypt) *password.Bcrypt { return b },
			fx.As(new(commands.PasswordHasher)),
			fx.As(new(commands.CredentialComparator)),
		),
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(commands.TokenIssuer)),
		),
	),
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewTimeSlotCommands,
		commands.NewThemeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMemberQueries,
		queries.NewReservationQueries,
		queries.NewTimeSlotQueries,
		queries.NewThemeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
