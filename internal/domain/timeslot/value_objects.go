package timeslot

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStartAt = errors.New("start time must be in HH:mm format")

const startAtLayout = "15:04"

// StartAt is a time of day with minute precision, independent of any date.
type StartAt struct {
	hour   int
	minute int
}

func NewStartAt(hour, minute int) (StartAt, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return StartAt{}, ErrInvalidStartAt
	}
	return StartAt{hour: hour, minute: minute}, nil
}

// ParseStartAt accepts exactly "HH:mm" with a 24-hour clock.
func ParseStartAt(s string) (StartAt, error) {
	if len(s) != len(startAtLayout) {
		return StartAt{}, ErrInvalidStartAt
	}
	t, err := time.Parse(startAtLayout, s)
	if err != nil {
		return StartAt{}, ErrInvalidStartAt
	}
	return StartAt{hour: t.Hour(), minute: t.Minute()}, nil
}

func (s StartAt) Hour() int   { return s.hour }
func (s StartAt) Minute() int { return s.minute }

func (s StartAt) String() string {
	return fmt.Sprintf("%02d:%02d", s.hour, s.minute)
}
