package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	for kind, name := range kindNames {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, kind.String())

			parsed, ok := ParseKind(name)
			require.True(t, ok)
			assert.Equal(t, kind, parsed)
		})
	}

	assert.Equal(t, "unknown(99)", Kind(99).String())
	_, ok := ParseKind("itinerary.dragged")
	assert.False(t, ok)
}

func TestEvent_JSON(t *testing.T) {
	evt := New(ItineraryClicked, "abc", map[string]any{"itinerary": float64(2)})
	require.NotEmpty(t, evt.ID)

	b, err := json.Marshal(evt)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"kind":"itinerary.clicked"`)

	var decoded Event
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, evt.Kind, decoded.Kind)
	assert.Equal(t, evt.Session, decoded.Session)
	assert.Equal(t, evt.Data, decoded.Data)
	assert.True(t, evt.At.Equal(decoded.At))

	err = json.Unmarshal([]byte(`{"kind":"nope"}`), &decoded)
	assert.Error(t, err)
}

func TestKafkaMessage(t *testing.T) {
	evt := New(TripPlanned, "session-1", nil)
	msg, err := kafkaMessage(evt)
	require.NoError(t, err)

	assert.Equal(t, []byte("session-1"), msg.Key)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "trip.planned", string(msg.Headers[0].Value))
	assert.Equal(t, evt.ID, string(msg.Headers[1].Value))
}

func TestNewPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PublisherConfig
		want    any
		wantErr bool
	}{
		{name: "empty is nop", cfg: PublisherConfig{}, want: Nop{}},
		{name: "none", cfg: PublisherConfig{Driver: DriverNone}, want: Nop{}},
		{name: "kafka", cfg: PublisherConfig{Driver: DriverKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "planner.events"}, want: &KafkaPublisher{}},
		{name: "kafka without brokers", cfg: PublisherConfig{Driver: DriverKafka}, wantErr: true},
		{name: "amqp without url", cfg: PublisherConfig{Driver: DriverAMQP}, wantErr: true},
		{name: "unknown", cfg: PublisherConfig{Driver: "nats"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPublisher(tt.cfg, zerolog.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, p)
			if _, ok := p.(Nop); ok {
				assert.NoError(t, p.Publish(context.Background(), New(TripPlanned, "s", nil)))
			}
			assert.NoError(t, p.Close())
		})
	}
}
