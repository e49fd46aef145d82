package commands

import (
	"context"
	"log/slog"
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	reqdto "roomescape/internal/handler/dto/request"
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/queries"
	"roomescape/internal/usecase/shared"
)

var (
	errThemeNotFound  = errs.New("reservation theme does not exist")
	errMemberNotFound = errs.New("reservation member does not exist")
)

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, memberID int64) (*queries.ReservationView, error)
	CreateForMember(ctx context.Context, req reqdto.AdminCreateReservationRequest) (*queries.ReservationView, error)
	Delete(ctx context.Context, id int64) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	publisher          shared.EventPublisher
	services           *reservation.Services
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	publisher shared.EventPublisher,
	clk clock.Clock,
	loc *time.Location,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		publisher:          publisher,
		services:           &reservation.Services{Clock: clk, Location: loc},
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest, memberID int64) (*queries.ReservationView, error) {
	return r.create(ctx, req, memberID, false)
}

func (r *reservationCommandsImpl) CreateForMember(ctx context.Context, req reqdto.AdminCreateReservationRequest) (*queries.ReservationView, error) {
	own, memberID := req.ForMember()
	return r.create(ctx, own, memberID, true)
}

func (r *reservationCommandsImpl) create(ctx context.Context, req reqdto.CreateReservationRequest, memberID int64, checkMember bool) (*queries.ReservationView, error) {
	date, err := req.ParseDate()
	if err != nil {
		return nil, validationErr(err)
	}

	var created *reservation.Reservation
	var id int64
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.TimeSlots().FindByID(ctx, req.TimeID)
		if err != nil {
			return mapStoreErr(errs.Wrap(err, "slot not found"), nil, nil, errs.ErrReferenceNotFound)
		}

		res, err := reservation.NewReservation(r.services, member.Ref{ID: memberID}, theme.Ref{ID: req.ThemeID}, slot, date)
		if err != nil {
			if errs.Is(err, reservation.ErrPastDateTime) {
				return errs.Mark(err, errs.ErrPastDateTime)
			}
			return validationErr(err)
		}

		dup, err := tx.Reservations().ExistsByDateAndTimeSlotAndTheme(ctx, date, req.TimeID, req.ThemeID)
		if err != nil {
			return err
		}
		if dup {
			return errs.ErrDuplicateBooking
		}

		exists, err := tx.Themes().ExistsByID(ctx, req.ThemeID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.Mark(errThemeNotFound, errs.ErrReferenceNotFound)
		}

		if checkMember {
			exists, err = tx.Members().ExistsByID(ctx, memberID)
			if err != nil {
				return err
			}
			if !exists {
				return errs.Mark(errMemberNotFound, errs.ErrReferenceNotFound)
			}
		}

		id, err = tx.Reservations().Insert(ctx, res)
		if err != nil {
			return mapStoreErr(err, errs.ErrDuplicateBooking, errs.ErrReferenceNotFound, nil)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.publish(ctx, shared.EventReservationCreated, created.CreatedAt(), shared.ReservationEventPayload{
		ReservationID: id,
		MemberID:      created.Member().ID,
		ThemeID:       created.Theme().ID,
		TimeID:        created.TimeSlot().ID,
		Date:          created.Date().String(),
	})

	return r.reservationQueries.FindByID(ctx, id)
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reservations().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errs.ErrNotFound
		}
		return mapStoreErr(tx.Reservations().DeleteByID(ctx, id), nil, nil, errs.ErrNotFound)
	})
	if err != nil {
		return err
	}

	r.publish(ctx, shared.EventReservationDeleted, r.services.Clock.Now(), shared.ReservationEventPayload{ReservationID: id})
	return nil
}

// publish runs after commit; a broker failure never undoes the booking.
func (r *reservationCommandsImpl) publish(ctx context.Context, eventType string, at time.Time, payload shared.ReservationEventPayload) {
	event := shared.NewEvent(eventType, at, payload)
	if err := r.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish reservation event",
			"event_type", eventType,
			"reservation_id", payload.ReservationID,
			"error", err.Error())
	}
}
