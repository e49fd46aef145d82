package queries

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/pkg/errs"
)

const MaxPopularThemeCount = 100

type ThemeReadStore interface {
	FindAll(ctx context.Context) ([]*ThemeView, error)
	// FindPopular ranks themes by reservation count within [from, to], most booked first.
	FindPopular(ctx context.Context, from, to reservation.Date, limit int) ([]*ThemeView, error)
}

type ThemeQueries interface {
	FindAll(ctx context.Context) ([]*ThemeView, error)
	FindPopular(ctx context.Context, from, to reservation.Date, count int) ([]*ThemeView, error)
}

type themeQueriesImpl struct {
	store ThemeReadStore
}

func NewThemeQueries(store ThemeReadStore) ThemeQueries {
	return &themeQueriesImpl{store: store}
}

func (q *themeQueriesImpl) FindAll(ctx context.Context) ([]*ThemeView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find themes")
	}
	return views, nil
}

func (q *themeQueriesImpl) FindPopular(ctx context.Context, from, to reservation.Date, count int) ([]*ThemeView, error) {
	if count <= 0 || count > MaxPopularThemeCount {
		return nil, errs.Mark(errs.Newf("count must be between 1 and %d", MaxPopularThemeCount), errs.ErrValidation)
	}
	if from.After(to) {
		return nil, errs.Mark(errs.New("startDate must not be after endDate"), errs.ErrValidation)
	}

	views, err := q.store.FindPopular(ctx, from, to, count)
	if err != nil {
		return nil, errs.Wrap(err, "failed to rank themes")
	}
	return views, nil
}
