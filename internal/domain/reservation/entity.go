package reservation

import (
	"errors"
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/pkg/clock"
)

var (
	ErrPastDateTime    = errors.New("reservation date and time are in the past")
	ErrMissingTimeSlot = errors.New("time slot is required")
)

type Services struct {
	Clock    clock.Clock
	Location *time.Location
}

type Reservation struct {
	id        int64
	member    member.Ref
	theme     theme.Ref
	timeSlot  timeslot.Ref
	date      Date
	createdAt time.Time
}

// NewReservation builds an unsaved reservation. A slot starting exactly now is still bookable.
func NewReservation(
	services *Services,
	memberRef member.Ref,
	themeRef theme.Ref,
	slot *timeslot.TimeSlot,
	date Date,
) (*Reservation, error) {
	if slot == nil {
		return nil, ErrMissingTimeSlot
	}

	now := services.Clock.Now()
	if date.At(slot.StartAt(), services.Location).Before(now) {
		return nil, ErrPastDateTime
	}

	return &Reservation{
		member:    memberRef,
		theme:     themeRef,
		timeSlot:  slot.Ref(),
		date:      date,
		createdAt: now,
	}, nil
}

func ReconstructReservation(
	id int64,
	memberRef member.Ref,
	themeRef theme.Ref,
	slotRef timeslot.Ref,
	date Date,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		member:    memberRef,
		theme:     themeRef,
		timeSlot:  slotRef,
		date:      date,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() int64              { return r.id }
func (r *Reservation) Member() member.Ref     { return r.member }
func (r *Reservation) Theme() theme.Ref       { return r.theme }
func (r *Reservation) TimeSlot() timeslot.Ref { return r.timeSlot }
func (r *Reservation) Date() Date             { return r.date }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
