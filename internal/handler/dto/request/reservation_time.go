package request

import "roomescape/internal/domain/timeslot"

type CreateReservationTimeRequest struct {
	StartAt string `json:"startAt" binding:"required"`
}

func (r CreateReservationTimeRequest) ToDomain() (timeslot.StartAt, error) {
	return timeslot.ParseStartAt(r.StartAt)
}
