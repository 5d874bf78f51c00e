package events

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Driver names accepted by NewPublisher.
const (
	DriverNone  = "none"
	DriverAMQP  = "amqp"
	DriverKafka = "kafka"
)

// PublisherConfig selects and configures an event broker.
type PublisherConfig struct {
	Driver       string
	AMQPURL      string
	AMQPExchange string
	KafkaBrokers []string
	KafkaTopic   string
}

// NewPublisher builds the publisher named by cfg.Driver. An empty driver means none.
func NewPublisher(cfg PublisherConfig, logger zerolog.Logger) (Publisher, error) {
	switch cfg.Driver {
	case "", DriverNone:
		return Nop{}, nil
	case DriverAMQP:
		if cfg.AMQPURL == "" {
			return nil, fmt.Errorf("events: amqp driver requires AMQP_URL")
		}
		return NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, logger.With().Str("component", "amqp").Logger()), nil
	case DriverKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("events: kafka driver requires KAFKA_BROKERS")
		}
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger.With().Str("component", "kafka").Logger()), nil
	default:
		return nil, fmt.Errorf("events: unknown driver %q", cfg.Driver)
	}
}
