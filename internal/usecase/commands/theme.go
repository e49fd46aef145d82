package commands

import (
	"context"

	reqdto "roomescape/internal/handler/dto/request"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/queries"
	"roomescape/internal/usecase/shared"
)

type ThemeCommands interface {
	Create(ctx context.Context, req reqdto.CreateThemeRequest) (*queries.ThemeView, error)
	Delete(ctx context.Context, id int64) error
}

type themeCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewThemeCommands(uow shared.UnitOfWork) ThemeCommands {
	return &themeCommandsImpl{uow: uow}
}

func (t *themeCommandsImpl) Create(ctx context.Context, req reqdto.CreateThemeRequest) (*queries.ThemeView, error) {
	th, err := req.ToDomain()
	if err != nil {
		return nil, validationErr(err)
	}

	var id int64
	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Themes().Insert(ctx, th)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &queries.ThemeView{
		ID:          id,
		Name:        th.Name(),
		Description: th.Description(),
		Thumbnail:   th.Thumbnail(),
	}, nil
}

func (t *themeCommandsImpl) Delete(ctx context.Context, id int64) error {
	return t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Themes().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errs.ErrNotFound
		}

		inUse, err := tx.Reservations().ExistsByThemeID(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return errs.ErrInUse
		}

		return mapStoreErr(tx.Themes().DeleteByID(ctx, id), nil, errs.ErrInUse, errs.ErrNotFound)
	})
}
