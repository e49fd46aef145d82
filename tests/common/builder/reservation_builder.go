//go:build unit || e2e

package builder

import (
	reqdto "roomescape/internal/handler/dto/request"
	"roomescape/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID       int64
	Date     string
	TimeID   int64
	ThemeID  int64
	MemberID int64
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:       1,
		Date:     "2100-08-05",
		TimeID:   1,
		ThemeID:  1,
		MemberID: 1,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Date:    r.Date,
		TimeID:  r.TimeID,
		ThemeID: r.ThemeID,
	}
}

func (r *ReservationBuilder) BuildAdminCreateRequestDTO() reqdto.AdminCreateReservationRequest {
	return reqdto.AdminCreateReservationRequest{
		Date:     r.Date,
		TimeID:   r.TimeID,
		ThemeID:  r.ThemeID,
		MemberID: r.MemberID,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:     r.ID,
		Date:   r.Date,
		Member: *NewMemberBuilder().WithID(r.MemberID).BuildView(),
		Theme:  *NewThemeBuilder().WithID(r.ThemeID).BuildView(),
		Time:   *NewTimeSlotBuilder().WithID(r.TimeID).BuildView(),
	}
}

func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithTimeID(id int64) *ReservationBuilder {
	r.TimeID = id
	return r
}

func (r *ReservationBuilder) WithThemeID(id int64) *ReservationBuilder {
	r.ThemeID = id
	return r
}
