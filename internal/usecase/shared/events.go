package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventReservationCreated = "reservation.created"
	EventReservationDeleted = "reservation.deleted"
)

type Event struct {
	ID         uuid.UUID
	Type       string
	OccurredAt time.Time
	Payload    any
}

func NewEvent(eventType string, occurredAt time.Time, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}

// EventPublisher delivers events after the producing transaction has committed.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

type ReservationEventPayload struct {
	ReservationID int64  `json:"reservationId"`
	MemberID      int64  `json:"memberId,omitempty"`
	ThemeID       int64  `json:"themeId,omitempty"`
	TimeID        int64  `json:"timeId,omitempty"`
	Date          string `json:"date,omitempty"`
}

// TokenRevoker records revoked token ids until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
