package timeslot

type TimeSlot struct {
	id      int64
	startAt StartAt
}

// Ref points at a time slot without carrying its start time.
type Ref struct {
	ID int64
}

func NewTimeSlot(startAt StartAt) *TimeSlot {
	return &TimeSlot{startAt: startAt}
}

func ReconstructTimeSlot(id int64, startAt StartAt) *TimeSlot {
	return &TimeSlot{id: id, startAt: startAt}
}

func (t *TimeSlot) Ref() Ref { return Ref{ID: t.id} }

func (t *TimeSlot) ID() int64        { return t.id }
func (t *TimeSlot) StartAt() StartAt { return t.startAt }
