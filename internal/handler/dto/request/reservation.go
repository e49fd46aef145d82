package request

import (
	"roomescape/internal/domain/reservation"
	"roomescape/internal/pkg/errs"
)

type CreateReservationRequest struct {
	Date    string `json:"date" binding:"required"`
	TimeID  int64  `json:"timeId" binding:"required,gt=0"`
	ThemeID int64  `json:"themeId" binding:"required,gt=0"`
}

func (r CreateReservationRequest) ParseDate() (reservation.Date, error) {
	return reservation.ParseDate(r.Date)
}

type AdminCreateReservationRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeID   int64  `json:"timeId" binding:"required,gt=0"`
	ThemeID  int64  `json:"themeId" binding:"required,gt=0"`
	MemberID int64  `json:"memberId" binding:"required,gt=0"`
}

func (r AdminCreateReservationRequest) ForMember() (CreateReservationRequest, int64) {
	return CreateReservationRequest{Date: r.Date, TimeID: r.TimeID, ThemeID: r.ThemeID}, r.MemberID
}

// ReservationSearchQuery is bound from the admin search query string. Empty values are ignored.
type ReservationSearchQuery struct {
	ThemeID  *int64 `form:"themeId" binding:"omitempty,gt=0"`
	MemberID *int64 `form:"memberId" binding:"omitempty,gt=0"`
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
}

func (q ReservationSearchQuery) Dates() (from, to *reservation.Date, err error) {
	from, err = optionalDate(q.DateFrom)
	if err != nil {
		return nil, nil, err
	}
	to, err = optionalDate(q.DateTo)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

type AvailableTimesQuery struct {
	Date    string `form:"date" binding:"required"`
	ThemeID int64  `form:"theme-id" binding:"required,gt=0"`
}

type PopularThemesQuery struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
	Count     int    `form:"count" binding:"required,gt=0"`
}

func (q PopularThemesQuery) Dates() (from, to reservation.Date, err error) {
	from, err = reservation.ParseDate(q.StartDate)
	if err != nil {
		return reservation.Date{}, reservation.Date{}, errs.Wrap(err, "startDate")
	}
	to, err = reservation.ParseDate(q.EndDate)
	if err != nil {
		return reservation.Date{}, reservation.Date{}, errs.Wrap(err, "endDate")
	}
	return from, to, nil
}

func optionalDate(s string) (*reservation.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := reservation.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
