package repository

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra"
	"roomescape/internal/infra/db"
	"roomescape/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	existsTimeSlotByID      = `SELECT EXISTS(SELECT 1 FROM reservation_times WHERE id = $1)`
	existsTimeSlotByStartAt = `SELECT EXISTS(SELECT 1 FROM reservation_times WHERE start_at = $1)`
	findTimeSlotByID        = `SELECT id, start_at FROM reservation_times WHERE id = $1`
	findAllTimeSlots        = `SELECT id, start_at FROM reservation_times ORDER BY id`
	findBookedTimeSlots     = `
SELECT t.id, t.start_at
FROM reservation_times t
JOIN reservations r ON r.time_id = t.id
WHERE r.date = $1 AND r.theme_id = $2
ORDER BY t.id`
	insertTimeSlot = `INSERT INTO reservation_times (start_at) VALUES ($1) RETURNING id`
	deleteTimeSlot = `DELETE FROM reservation_times WHERE id = $1`
)

type TimeSlotRepository struct {
	db db.DBTX
}

func NewTimeSlotRepository(db db.DBTX) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.QueryRow(ctx, existsTimeSlotByID, id).Scan, "failed to check time slot existence")
}

func (r *TimeSlotRepository) ExistsByStartAt(ctx context.Context, startAt timeslot.StartAt) (bool, error) {
	arg := pgconv.TimeOfDayToPgtype(startAt.Hour(), startAt.Minute())
	return exists(r.db.QueryRow(ctx, existsTimeSlotByStartAt, arg).Scan, "failed to check time slot start")
}

func (r *TimeSlotRepository) FindByID(ctx context.Context, id int64) (*timeslot.TimeSlot, error) {
	slot, err := scanTimeSlot(r.db.QueryRow(ctx, findTimeSlotByID, id).Scan)
	if err != nil {
		return nil, classify("time slot not found", err)
	}
	return slot, nil
}

func (r *TimeSlotRepository) FindAll(ctx context.Context) ([]*timeslot.TimeSlot, error) {
	return r.list(ctx, "failed to find time slots", findAllTimeSlots)
}

func (r *TimeSlotRepository) FindBookedByDateAndTheme(ctx context.Context, date reservation.Date, themeID int64) ([]*timeslot.TimeSlot, error) {
	return r.list(ctx, "failed to find booked time slots", findBookedTimeSlots, pgconv.DateToPgtype(date.Time()), themeID)
}

func (r *TimeSlotRepository) Insert(ctx context.Context, t *timeslot.TimeSlot) (int64, error) {
	var id int64
	arg := pgconv.TimeOfDayToPgtype(t.StartAt().Hour(), t.StartAt().Minute())
	if err := r.db.QueryRow(ctx, insertTimeSlot, arg).Scan(&id); err != nil {
		return 0, classify("failed to insert time slot", err)
	}
	return id, nil
}

func (r *TimeSlotRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteTimeSlot, id)
	if err != nil {
		return classify("failed to delete time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TimeSlotRepository) list(ctx context.Context, msg, query string, args ...any) ([]*timeslot.TimeSlot, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	var result []*timeslot.TimeSlot
	for rows.Next() {
		slot, err := scanTimeSlot(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		result = append(result, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return result, nil
}

func scanTimeSlot(scan func(dest ...any) error) (*timeslot.TimeSlot, error) {
	var (
		id      int64
		startAt pgtype.Time
	)
	if err := scan(&id, &startAt); err != nil {
		return nil, err
	}

	hour, minute := pgconv.TimeOfDayFromPgtype(startAt)
	s, err := timeslot.NewStartAt(hour, minute)
	if err != nil {
		return nil, err
	}
	return timeslot.ReconstructTimeSlot(id, s), nil
}
