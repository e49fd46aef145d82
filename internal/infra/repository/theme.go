package repository

import (
	"context"

	"roomescape/internal/domain/theme"
	"roomescape/internal/infra"
	"roomescape/internal/infra/db"
)

const (
	existsThemeByID = `SELECT EXISTS(SELECT 1 FROM themes WHERE id = $1)`
	insertTheme     = `INSERT INTO themes (name, description, thumbnail) VALUES ($1, $2, $3) RETURNING id`
	deleteTheme     = `DELETE FROM themes WHERE id = $1`
)

type ThemeRepository struct {
	db db.DBTX
}

func NewThemeRepository(db db.DBTX) *ThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.QueryRow(ctx, existsThemeByID, id).Scan, "failed to check theme existence")
}

func (r *ThemeRepository) Insert(ctx context.Context, t *theme.Theme) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, insertTheme, t.Name(), t.Description(), t.Thumbnail()).Scan(&id); err != nil {
		return 0, classify("failed to insert theme", err)
	}
	return id, nil
}

func (r *ThemeRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteTheme, id)
	if err != nil {
		return classify("failed to delete theme", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("theme not found", nil, infra.KindNotFound)
	}
	return nil
}
