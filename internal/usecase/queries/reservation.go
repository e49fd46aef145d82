package queries

import (
	"context"

	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	Search(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	FindByMemberID(ctx context.Context, memberID int64) ([]*ReservationView, error)
}

type ReservationQueries interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	Search(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	FindMine(ctx context.Context, memberID int64) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) FindByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) Search(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, errs.Mark(errs.New("dateFrom must not be after dateTo"), errs.ErrValidation)
	}

	views, err := q.store.Search(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search reservations")
	}
	return views, nil
}

func (q *reservationQueriesImpl) FindMine(ctx context.Context, memberID int64) ([]*ReservationView, error) {
	views, err := q.store.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find member reservations")
	}
	return views, nil
}
