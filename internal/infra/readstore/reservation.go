package readstore

import (
	"context"
	"strconv"
	"strings"

	"roomescape/internal/infra"
	"roomescape/internal/infra/db"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const reservationViewSelect = `
SELECT r.id, r.date,
       m.id, m.name, m.email, m.role,
       th.id, th.name, th.description, th.thumbnail,
       t.id, t.start_at
FROM reservations r
JOIN members m ON m.id = r.member_id
JOIN themes th ON th.id = r.theme_id
JOIN reservation_times t ON t.id = r.time_id`

const reservationViewOrder = ` ORDER BY r.date, t.start_at, r.id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	view, err := scanReservationView(r.db.QueryRow(ctx, reservationViewSelect+` WHERE r.id = $1`, id).Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindByMemberID(ctx context.Context, memberID int64) ([]*queries.ReservationView, error) {
	return r.list(ctx, reservationViewSelect+` WHERE r.member_id = $1`+reservationViewOrder, memberID)
}

func (r *ReservationReadStore) Search(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	query, args := buildSearch(filter)
	return r.list(ctx, query, args...)
}

// buildSearch appends one placeholder condition per set filter field.
func buildSearch(filter queries.ReservationFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.ThemeID != nil {
		add("r.theme_id = ?", *filter.ThemeID)
	}
	if filter.MemberID != nil {
		add("r.member_id = ?", *filter.MemberID)
	}
	if filter.DateFrom != nil {
		add("r.date >= ?", pgconv.DateToPgtype(filter.DateFrom.Time()))
	}
	if filter.DateTo != nil {
		add("r.date <= ?", pgconv.DateToPgtype(filter.DateTo.Time()))
	}

	query := reservationViewSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return query + reservationViewOrder, args
}

func (r *ReservationReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

func scanReservationView(scan func(dest ...any) error) (*queries.ReservationView, error) {
	var (
		v       queries.ReservationView
		date    pgtype.Date
		startAt pgtype.Time
	)
	err := scan(
		&v.ID, &date,
		&v.Member.ID, &v.Member.Name, &v.Member.Email, &v.Member.Role,
		&v.Theme.ID, &v.Theme.Name, &v.Theme.Description, &v.Theme.Thumbnail,
		&v.Time.ID, &startAt,
	)
	if err != nil {
		return nil, err
	}

	v.Date = pgconv.DateFromPgtype(date).Format("2006-01-02")
	v.Time.StartAt = formatStartAt(startAt)
	return &v, nil
}
