package queries

import "roomescape/internal/domain/reservation"

// Read models (DTO for read side)
type MemberView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ThemeView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

type TimeSlotView struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
}

type AvailableTimeSlotView struct {
	Time   TimeSlotView `json:"time"`
	Booked bool         `json:"booked"`
}

type ReservationView struct {
	ID     int64        `json:"id"`
	Date   string       `json:"date"`
	Member MemberView   `json:"member"`
	Theme  ThemeView    `json:"theme"`
	Time   TimeSlotView `json:"time"`
}

// ReservationFilter narrows an admin reservation search. Nil fields are not applied.
type ReservationFilter struct {
	ThemeID  *int64
	MemberID *int64
	DateFrom *reservation.Date
	DateTo   *reservation.Date
}
