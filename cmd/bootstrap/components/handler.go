package components

import (
	"roomescape/internal/handler"
	"roomescape/internal/handler/api"
	"roomescape/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMemberHandler,
		api.NewReservationHandler,
		api.NewReservationTimeHandler,
		api.NewThemeHandler,
		middleware.NewAuthMiddleware,
		func(
			m *api.MemberHandler,
			r *api.ReservationHandler,
			t *api.ReservationTimeHandler,
			th *api.ThemeHandler,
		) handler.Handlers {
			return handler.Handlers{Member: m, Reservation: r, ReservationTime: t, Theme: th}
		},
	),
	fx.Invoke(handler.NewRouter),
)
