package reservation

import (
	"errors"
	"time"

	"roomescape/internal/domain/timeslot"
)

var ErrInvalidDate = errors.New("date must be in yyyy-MM-dd format")

const dateLayout = "2006-01-02"

// Date is a calendar day without time or zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// ParseDate rejects both malformed input and impossible days such as 2016-02-30.
func ParseDate(s string) (Date, error) {
	if len(s) != len(dateLayout) {
		return Date{}, ErrInvalidDate
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// At combines the day with a slot start time in loc.
func (d Date) At(start timeslot.StartAt, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, start.Hour(), start.Minute(), 0, 0, loc)
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}
