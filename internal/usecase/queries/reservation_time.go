package queries

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

type TimeSlotReadStore interface {
	FindAll(ctx context.Context) ([]*timeslot.TimeSlot, error)
	FindBookedByDateAndTheme(ctx context.Context, date reservation.Date, themeID int64) ([]*timeslot.TimeSlot, error)
}

type TimeSlotQueries interface {
	FindAll(ctx context.Context) ([]*TimeSlotView, error)
	FindAvailable(ctx context.Context, date reservation.Date, themeID int64) ([]*AvailableTimeSlotView, error)
}

type timeSlotQueriesImpl struct {
	store TimeSlotReadStore
}

func NewTimeSlotQueries(store TimeSlotReadStore) TimeSlotQueries {
	return &timeSlotQueriesImpl{store: store}
}

func (q *timeSlotQueriesImpl) FindAll(ctx context.Context) ([]*TimeSlotView, error) {
	slots, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find time slots")
	}

	views := make([]*TimeSlotView, 0, len(slots))
	for _, s := range slots {
		v := ToTimeSlotView(s)
		views = append(views, &v)
	}
	return views, nil
}

// FindAvailable loads every slot and the slots booked for (date, theme) concurrently, then marks each slot.
func (q *timeSlotQueriesImpl) FindAvailable(ctx context.Context, date reservation.Date, themeID int64) ([]*AvailableTimeSlotView, error) {
	var all, booked []*timeslot.TimeSlot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = q.store.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		booked, err = q.store.FindBookedByDateAndTheme(gctx, date, themeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "failed to load time slot availability")
	}

	availability := reservation.CalculateAvailability(all, booked)
	views := make([]*AvailableTimeSlotView, 0, len(availability))
	for _, a := range availability {
		views = append(views, &AvailableTimeSlotView{
			Time:   ToTimeSlotView(a.TimeSlot),
			Booked: a.Booked,
		})
	}
	return views, nil
}

func ToTimeSlotView(s *timeslot.TimeSlot) TimeSlotView {
	return TimeSlotView{ID: s.ID(), StartAt: s.StartAt().String()}
}
