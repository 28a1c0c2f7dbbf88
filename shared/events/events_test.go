package events

import (
	"encoding/json"
	"testing"

	"github.com/depanneo/booking-platform/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		topic    Topic
		pattern  Topic
		expected bool
	}{
		{topic: "reservation.created", pattern: "reservation.created", expected: true},
		{topic: "reservation.status.changed", pattern: "reservation.#", expected: true},
		{topic: "assignment.responded", pattern: "reservation.#", expected: false},
		{topic: "payment.confirmed", pattern: "#.confirmed", expected: true},
		{topic: "reservation.partner.assigned", pattern: "#partner#", expected: true},
		{topic: "payment.failed", pattern: "payment.*", expected: true},
		{topic: "payment.intent.created", pattern: "payment.*", expected: false},
		{topic: "booking.saga.failed", pattern: "booking.*.failed", expected: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic)+" ~ "+string(tt.pattern), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.topic.Matches(tt.pattern))
		})
	}
}

func TestNewTopic(t *testing.T) {
	_, err := NewTopic("")
	assert.ErrorIs(t, err, ErrInvalidTopic)

	topic, err := NewTopic(PaymentConfirmedEvent)
	require.NoError(t, err)
	assert.Equal(t, PaymentConfirmedEvent, topic.String())
}

type payload struct {
	ReservationID models.ID `json:"reservation_id"`
	PartnerID     models.ID `json:"partner_id"`
}

func TestEvent_UnmarshalPayload(t *testing.T) {
	id := models.GenerateUUID()
	data := payload{ReservationID: id, PartnerID: models.GenerateUUID()}

	t.Run("same type is copied", func(t *testing.T) {
		event := NewEvent(id, ReservationPartnerAssigned, data)
		var out payload
		require.NoError(t, event.UnmarshalPayload(&out))
		assert.Equal(t, data, out)
	})

	t.Run("raw json is decoded", func(t *testing.T) {
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		event := NewEvent(id, ReservationPartnerAssigned, json.RawMessage(raw))

		var out map[string]string
		require.NoError(t, event.UnmarshalPayload(&out))
		assert.Equal(t, id.String(), out["reservation_id"])
	})

	t.Run("receiver must be a pointer", func(t *testing.T) {
		event := NewEvent(id, ReservationPartnerAssigned, data)
		assert.ErrorIs(t, event.UnmarshalPayload(payload{}), ErrInvalidReceiver)
	})
}

func TestEvent_Builders(t *testing.T) {
	id := models.GenerateUUID()
	event := NewEvent(id, ReservationCreatedEvent, nil).
		WithCorrelationID(id).
		WithMetadata("request_id", "r-1")

	assert.Equal(t, Topic(ReservationCreatedEvent), event.Topic)
	assert.Equal(t, id, event.CorrelationID)
	value, ok := event.Metadata.Get("request_id")
	assert.True(t, ok)
	assert.Equal(t, "r-1", value)

	clone := event.Metadata.Clone()
	clone.Set("request_id", "r-2")
	value, _ = event.Metadata.Get("request_id")
	assert.Equal(t, "r-1", value)
}
