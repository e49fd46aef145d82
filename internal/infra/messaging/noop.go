package messaging

import (
	"context"
	"log/slog"

	"roomescape/internal/usecase/shared"
)

// NoopPublisher stands in when no broker URL is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) Publish(_ context.Context, event shared.Event) error {
	slog.Debug("event publishing disabled", "event_type", event.Type, "event_id", event.ID.String())
	return nil
}
