package response

import "roomescape/internal/usecase/queries"

type ReservationResponse struct {
	ID     int64                   `json:"id"`
	Date   string                  `json:"date"`
	Member MemberResponse          `json:"member"`
	Theme  ThemeResponse           `json:"theme"`
	Time   ReservationTimeResponse `json:"time"`
}

func FromReservationView(v *queries.ReservationView) (ReservationResponse, error) {
	res := ReservationResponse{ID: v.ID, Date: v.Date}

	var err error
	if res.Member, err = FromMemberView(&v.Member); err != nil {
		return ReservationResponse{}, err
	}
	if res.Theme, err = FromThemeView(&v.Theme); err != nil {
		return ReservationResponse{}, err
	}
	if res.Time, err = FromTimeSlotView(&v.Time); err != nil {
		return ReservationResponse{}, err
	}
	return res, nil
}

func FromReservationViews(vs []*queries.ReservationView) ([]ReservationResponse, error) {
	return mapAll(vs, FromReservationView)
}
