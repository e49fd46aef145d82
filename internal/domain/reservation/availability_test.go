//go:build unit

package reservation_test

import (
	"testing"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(t *testing.T, id int64, hhmm string) *timeslot.TimeSlot {
	t.Helper()
	startAt, err := timeslot.ParseStartAt(hhmm)
	require.NoError(t, err)
	return timeslot.ReconstructTimeSlot(id, startAt)
}

type availabilityRow struct {
	id      int64
	startAt string
	booked  bool
}

func rows(avail []reservation.Availability) []availabilityRow {
	out := make([]availabilityRow, 0, len(avail))
	for _, a := range avail {
		out = append(out, availabilityRow{id: a.TimeSlot.ID(), startAt: a.TimeSlot.StartAt().String(), booked: a.Booked})
	}
	return out
}

func TestCalculateAvailability(t *testing.T) {
	ten := slot(t, 1, "10:00")
	noon := slot(t, 2, "12:00")
	two := slot(t, 3, "14:00")

	tests := []struct {
		name     string
		all      []*timeslot.TimeSlot
		booked   []*timeslot.TimeSlot
		expected []availabilityRow
	}{
		{
			name:     "no slots defined",
			all:      nil,
			booked:   nil,
			expected: []availabilityRow{},
		},
		{
			name:   "nothing booked",
			all:    []*timeslot.TimeSlot{ten, noon},
			booked: nil,
			expected: []availabilityRow{
				{id: 1, startAt: "10:00", booked: false},
				{id: 2, startAt: "12:00", booked: false},
			},
		},
		{
			name:   "first slot booked",
			all:    []*timeslot.TimeSlot{ten, noon},
			booked: []*timeslot.TimeSlot{ten},
			expected: []availabilityRow{
				{id: 1, startAt: "10:00", booked: true},
				{id: 2, startAt: "12:00", booked: false},
			},
		},
		{
			name:   "everything booked",
			all:    []*timeslot.TimeSlot{ten, noon, two},
			booked: []*timeslot.TimeSlot{two, ten, noon},
			expected: []availabilityRow{
				{id: 1, startAt: "10:00", booked: true},
				{id: 2, startAt: "12:00", booked: true},
				{id: 3, startAt: "14:00", booked: true},
			},
		},
		{
			name:   "booked matched by id, not by pointer",
			all:    []*timeslot.TimeSlot{ten, noon},
			booked: []*timeslot.TimeSlot{slot(t, 2, "12:00")},
			expected: []availabilityRow{
				{id: 1, startAt: "10:00", booked: false},
				{id: 2, startAt: "12:00", booked: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := reservation.CalculateAvailability(tt.all, tt.booked)

			assert.Len(t, actual, len(tt.all))
			assert.Equal(t, tt.expected, rows(actual))
		})
	}
}
