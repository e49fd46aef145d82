package response

import "roomescape/internal/usecase/queries"

type ReservationTimeResponse struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
}

type AvailableTimeResponse struct {
	Time   ReservationTimeResponse `json:"time"`
	Booked bool                    `json:"booked"`
}

func FromTimeSlotView(v *queries.TimeSlotView) (ReservationTimeResponse, error) {
	return copyView[ReservationTimeResponse](v)
}

func FromTimeSlotViews(vs []*queries.TimeSlotView) ([]ReservationTimeResponse, error) {
	return mapAll(vs, FromTimeSlotView)
}

func FromAvailableTimeSlotView(v *queries.AvailableTimeSlotView) (AvailableTimeResponse, error) {
	t, err := FromTimeSlotView(&v.Time)
	if err != nil {
		return AvailableTimeResponse{}, err
	}
	return AvailableTimeResponse{Time: t, Booked: v.Booked}, nil
}

func FromAvailableTimeSlotViews(vs []*queries.AvailableTimeSlotView) ([]AvailableTimeResponse, error) {
	return mapAll(vs, FromAvailableTimeSlotView)
}
