package shared

import (
	"context"

	"roomescape/internal/domain/member"
	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying on serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Members() MemberRepository
	Themes() ThemeRepository
	TimeSlots() TimeSlotRepository
	Reservations() ReservationRepository
}

type MemberRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email member.Email) (bool, error)
	FindByEmail(ctx context.Context, email member.Email) (*member.Member, error)
	Insert(ctx context.Context, mem *member.Member) (int64, error)
}

type ThemeRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, t *theme.Theme) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TimeSlotRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByStartAt(ctx context.Context, startAt timeslot.StartAt) (bool, error)
	FindByID(ctx context.Context, id int64) (*timeslot.TimeSlot, error)
	// FindAll returns slots ordered by id.
	FindAll(ctx context.Context) ([]*timeslot.TimeSlot, error)
	FindBookedByDateAndTheme(ctx context.Context, date reservation.Date, themeID int64) ([]*timeslot.TimeSlot, error)
	Insert(ctx context.Context, t *timeslot.TimeSlot) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByTimeSlotID(ctx context.Context, timeSlotID int64) (bool, error)
	ExistsByThemeID(ctx context.Context, themeID int64) (bool, error)
	ExistsByDateAndTimeSlotAndTheme(ctx context.Context, date reservation.Date, timeSlotID, themeID int64) (bool, error)
	Insert(ctx context.Context, r *reservation.Reservation) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}
