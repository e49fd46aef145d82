package repository

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/infra"
	"roomescape/internal/infra/db"
	"roomescape/internal/pkg/pgconv"
)

const (
	existsReservationByID       = `SELECT EXISTS(SELECT 1 FROM reservations WHERE id = $1)`
	existsReservationByTimeID   = `SELECT EXISTS(SELECT 1 FROM reservations WHERE time_id = $1)`
	existsReservationByThemeID  = `SELECT EXISTS(SELECT 1 FROM reservations WHERE theme_id = $1)`
	existsReservationBySlotDate = `SELECT EXISTS(SELECT 1 FROM reservations WHERE date = $1 AND time_id = $2 AND theme_id = $3)`
	insertReservation           = `
INSERT INTO reservations (member_id, theme_id, time_id, date, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	deleteReservation = `DELETE FROM reservations WHERE id = $1`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.QueryRow(ctx, existsReservationByID, id).Scan, "failed to check reservation existence")
}

func (r *ReservationRepository) ExistsByTimeSlotID(ctx context.Context, timeSlotID int64) (bool, error) {
	return exists(r.db.QueryRow(ctx, existsReservationByTimeID, timeSlotID).Scan, "failed to check time slot usage")
}

func (r *ReservationRepository) ExistsByThemeID(ctx context.Context, themeID int64) (bool, error) {
	return exists(r.db.QueryRow(ctx, existsReservationByThemeID, themeID).Scan, "failed to check theme usage")
}

func (r *ReservationRepository) ExistsByDateAndTimeSlotAndTheme(ctx context.Context, date reservation.Date, timeSlotID, themeID int64) (bool, error) {
	row := r.db.QueryRow(ctx, existsReservationBySlotDate, pgconv.DateToPgtype(date.Time()), timeSlotID, themeID)
	return exists(row.Scan, "failed to check duplicate reservation")
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertReservation,
		res.Member().ID,
		res.Theme().ID,
		res.TimeSlot().ID,
		pgconv.DateToPgtype(res.Date().Time()),
		res.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, classify("failed to insert reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return classify("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
