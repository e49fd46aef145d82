package commands

import (
	"context"

	"roomescape/internal/domain/timeslot"
	reqdto "roomescape/internal/handler/dto/request"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/queries"
	"roomescape/internal/usecase/shared"
)

type TimeSlotCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationTimeRequest) (*queries.TimeSlotView, error)
	Delete(ctx context.Context, id int64) error
}

type timeSlotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewTimeSlotCommands(uow shared.UnitOfWork) TimeSlotCommands {
	return &timeSlotCommandsImpl{uow: uow}
}

func (t *timeSlotCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationTimeRequest) (*queries.TimeSlotView, error) {
	startAt, err := req.ToDomain()
	if err != nil {
		return nil, validationErr(err)
	}

	slot := timeslot.NewTimeSlot(startAt)
	var id int64
	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.TimeSlots().ExistsByStartAt(ctx, startAt)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateTimeSlot
		}

		id, err = tx.TimeSlots().Insert(ctx, slot)
		return mapStoreErr(err, errs.ErrDuplicateTimeSlot, nil, nil)
	})
	if err != nil {
		return nil, err
	}

	view := queries.ToTimeSlotView(timeslot.ReconstructTimeSlot(id, startAt))
	return &view, nil
}

// Delete refuses to remove a slot that any reservation still points at.
func (t *timeSlotCommandsImpl) Delete(ctx context.Context, id int64) error {
	return t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.TimeSlots().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errs.ErrNotFound
		}

		inUse, err := tx.Reservations().ExistsByTimeSlotID(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return errs.ErrInUse
		}

		return mapStoreErr(tx.TimeSlots().DeleteByID(ctx, id), nil, errs.ErrInUse, errs.ErrNotFound)
	})
}
