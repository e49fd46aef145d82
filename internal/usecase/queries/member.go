package queries

import (
	"context"

	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
)

type MemberReadStore interface {
	FindAll(ctx context.Context) ([]*MemberView, error)
	FindByID(ctx context.Context, id int64) (*MemberView, error)
}

type MemberQueries interface {
	FindAll(ctx context.Context) ([]*MemberView, error)
	FindByID(ctx context.Context, id int64) (*MemberView, error)
}

type memberQueriesImpl struct {
	store MemberReadStore
}

func NewMemberQueries(store MemberReadStore) MemberQueries {
	return &memberQueriesImpl{store: store}
}

func (q *memberQueriesImpl) FindAll(ctx context.Context) ([]*MemberView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find members")
	}
	return views, nil
}

func (q *memberQueriesImpl) FindByID(ctx context.Context, id int64) (*MemberView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrMemberNotFound)
		}
		return nil, errs.Wrap(err, "failed to find member")
	}
	return view, nil
}
