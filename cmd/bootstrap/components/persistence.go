package components

import (
	"roomescape/internal/infra/db"
	"roomescape/internal/infra/readstore"
	"roomescape/internal/infra/repository"
	"roomescape/internal/infra/uow"
	"roomescape/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewThemeReadStore,
			fx.As(new(queries.ThemeReadStore)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
		// Availability reads the same rows the write side does.
		fx.Annotate(
			repository.NewTimeSlotRepository,
			fx.As(new(queries.TimeSlotReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
