package readstore

import (
	"context"
	"fmt"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/infra"
	"roomescape/internal/infra/db"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findAllThemeViews = `SELECT id, name, description, thumbnail FROM themes ORDER BY id`

	// Themes with no bookings in range are left out; ties go to the lower id.
	findPopularThemeViews = `
SELECT th.id, th.name, th.description, th.thumbnail
FROM themes th
JOIN reservations r ON r.theme_id = th.id
WHERE r.date BETWEEN $1 AND $2
GROUP BY th.id, th.name, th.description, th.thumbnail
ORDER BY COUNT(r.id) DESC, th.id
LIMIT $3`
)

type ThemeReadStore struct {
	db db.DBTX
}

func NewThemeReadStore(db db.DBTX) *ThemeReadStore {
	return &ThemeReadStore{db: db}
}

func (r *ThemeReadStore) FindAll(ctx context.Context) ([]*queries.ThemeView, error) {
	return r.list(ctx, findAllThemeViews)
}

func (r *ThemeReadStore) FindPopular(ctx context.Context, from, to reservation.Date, limit int) ([]*queries.ThemeView, error) {
	return r.list(ctx, findPopularThemeViews,
		pgconv.DateToPgtype(from.Time()),
		pgconv.DateToPgtype(to.Time()),
		limit,
	)
}

func (r *ThemeReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ThemeView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find themes", err)
	}
	defer rows.Close()

	result := make([]*queries.ThemeView, 0)
	for rows.Next() {
		var v queries.ThemeView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Thumbnail); err != nil {
			return nil, infra.WrapRepoErr("failed to scan theme", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate themes", err)
	}
	return result, nil
}

func formatStartAt(pt pgtype.Time) string {
	hour, minute := pgconv.TimeOfDayFromPgtype(pt)
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
