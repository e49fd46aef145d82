package reservation

import "roomescape/internal/domain/timeslot"

type Availability struct {
	TimeSlot *timeslot.TimeSlot
	Booked   bool
}

// CalculateAvailability flags every slot in all that also appears in booked, matched by id.
// The result keeps the order of all.
func CalculateAvailability(all, booked []*timeslot.TimeSlot) []Availability {
	bookedIDs := make(map[int64]struct{}, len(booked))
	for _, b := range booked {
		bookedIDs[b.ID()] = struct{}{}
	}

	result := make([]Availability, 0, len(all))
	for _, slot := range all {
		_, ok := bookedIDs[slot.ID()]
		result = append(result, Availability{TimeSlot: slot, Booked: ok})
	}
	return result
}
