package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

// KafkaPublisher writes events to a single topic keyed by session, so one
// session's events stay ordered on one partition. Writes are asynchronous: Publish
// returns once the message is queued and delivery failures are logged.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger zerolog.Logger
}

// kafkaBatchTimeout bounds how long a queued event waits for its batch to fill.
const kafkaBatchTimeout = 10 * time.Millisecond

// NewKafkaPublisher creates a publisher for topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, logger zerolog.Logger) *KafkaPublisher {
	p := &KafkaPublisher{logger: logger}
	p.writer = &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           kafkaBatchTimeout,
		Async:                  true,
		Completion:             p.completed,
	}
	return p
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt Event) error {
	msg, err := kafkaMessage(evt)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: failed to write to kafka: %w", err)
	}
	return nil
}

// Close flushes queued events.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// completed reports the outcome of an asynchronous batch.
func (p *KafkaPublisher) completed(messages []kafkago.Message, err error) {
	if err != nil {
		p.logger.Warn().Err(err).Int("messages", len(messages)).Msg("failed to write events to kafka")
		return
	}
	for _, msg := range messages {
		p.logger.Debug().Str("kind", header(msg, "type")).Str("session", string(msg.Key)).Msg("event written")
	}
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func kafkaMessage(evt Event) (kafkago.Message, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("events: failed to encode event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(evt.Session),
		Value: body,
		Time:  evt.At,
		Headers: []kafkago.Header{
			{Key: "type", Value: []byte(evt.Kind.String())},
			{Key: "id", Value: []byte(evt.ID)},
		},
	}, nil
}
