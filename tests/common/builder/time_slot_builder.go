//go:build unit || e2e

package builder

import (
	"roomescape/internal/domain/timeslot"
	reqdto "roomescape/internal/handler/dto/request"
	"roomescape/internal/usecase/queries"
)

type TimeSlotBuilder struct {
	ID      int64
	StartAt string
}

func NewTimeSlotBuilder() *TimeSlotBuilder {
	return &TimeSlotBuilder{
		ID:      1,
		StartAt: "10:00",
	}
}

func (t *TimeSlotBuilder) BuildDomain() *timeslot.TimeSlot {
	startAt, err := timeslot.ParseStartAt(t.StartAt)
	if err != nil {
		panic(err)
	}
	return timeslot.ReconstructTimeSlot(t.ID, startAt)
}

func (t *TimeSlotBuilder) BuildCreateRequestDTO() reqdto.CreateReservationTimeRequest {
	return reqdto.CreateReservationTimeRequest{StartAt: t.StartAt}
}

func (t *TimeSlotBuilder) BuildView() *queries.TimeSlotView {
	return &queries.TimeSlotView{ID: t.ID, StartAt: t.StartAt}
}

func (t *TimeSlotBuilder) WithID(id int64) *TimeSlotBuilder {
	t.ID = id
	return t
}

func (t *TimeSlotBuilder) WithStartAt(startAt string) *TimeSlotBuilder {
	t.StartAt = startAt
	return t
}
