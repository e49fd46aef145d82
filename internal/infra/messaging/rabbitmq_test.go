//go:build unit

package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"roomescape/internal/infra/messaging"
	"roomescape/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type recordingChannel struct {
	sent []published
	err  error
}

func (c *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestRabbitPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2100, 8, 5, 9, 0, 0, 0, time.UTC)

	t.Run("success: routes by event type with a JSON envelope", func(t *testing.T) {
		ch := &recordingChannel{}
		publisher := messaging.NewRabbitPublisher(ch, "roomescape.events")
		event := shared.NewEvent(shared.EventReservationCreated, at, shared.ReservationEventPayload{ReservationID: 7, Date: "2100-08-05"})

		require.NoError(t, publisher.Publish(ctx, event))

		require.Len(t, ch.sent, 1)
		assert.Equal(t, "roomescape.events", ch.sent[0].exchange)
		assert.Equal(t, "reservation.created", ch.sent[0].key)
		assert.Equal(t, "application/json", ch.sent[0].msg.ContentType)
		assert.Equal(t, amqp.Persistent, ch.sent[0].msg.DeliveryMode)

		var body struct {
			ID      string         `json:"id"`
			Type    string         `json:"type"`
			Payload map[string]any `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(ch.sent[0].msg.Body, &body))
		assert.Equal(t, event.ID.String(), body.ID)
		assert.Equal(t, "reservation.created", body.Type)
		assert.Equal(t, float64(7), body.Payload["reservationId"])
	})

	t.Run("error: channel failure is returned", func(t *testing.T) {
		ch := &recordingChannel{err: errors.New("channel closed")}
		publisher := messaging.NewRabbitPublisher(ch, "roomescape.events")

		err := publisher.Publish(ctx, shared.NewEvent(shared.EventReservationDeleted, at, shared.ReservationEventPayload{ReservationID: 7}))

		assert.Error(t, err)
	})
}
