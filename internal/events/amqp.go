package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// When reconnecting to the server after connection failure
	reconnectDelay = 5 * time.Second

	// When setting up the channel after a channel exception
	reInitDelay = 2 * time.Second

	// When resending messages the server didn't confirm
	resendDelay = time.Second
)

var (
	errNotConnected  = errors.New("events: not connected to a server")
	errAlreadyClosed = errors.New("events: already closed: not connected to the server")
	errShutdown      = errors.New("events: publisher is shutting down")
)

// AMQPPublisher publishes events to a topic exchange, routed by event kind. It keeps
// reconnecting in the background and waits for the publisher confirm of every
// message. Concurrent publishers each wait on their own delivery tag.
type AMQPPublisher struct {
	m               *sync.Mutex
	exchange        string
	connection      *amqp.Connection
	channel         *amqp.Channel
	done            chan bool
	notifyConnClose chan *amqp.Error
	notifyChanClose chan *amqp.Error
	isReady         bool
	logger          zerolog.Logger
}

// NewAMQPPublisher starts connecting to addr in the background.
func NewAMQPPublisher(addr, exchange string, logger zerolog.Logger) *AMQPPublisher {
	p := AMQPPublisher{
		m:        &sync.Mutex{},
		exchange: exchange,
		done:     make(chan bool),
		logger:   logger,
	}
	go p.handleReconnect(addr)
	return &p
}

// handleReconnect will wait for a connection error on
// notifyConnClose, and then continuously attempt to reconnect.
func (p *AMQPPublisher) handleReconnect(addr string) {
	for {
		p.m.Lock()
		p.isReady = false
		p.m.Unlock()

		p.logger.Info().Msg("attempting to connect to AMQP")

		conn, err := p.connect(addr)
		if err != nil {
			p.logger.Warn().Err(err).Msg("failed to connect to AMQP, retrying")

			select {
			case <-p.done:
				return
			case <-time.After(reconnectDelay):
			}
			continue
		}

		if done := p.handleReInit(conn); done {
			break
		}
	}
}

func (p *AMQPPublisher) connect(addr string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(addr)
	if err != nil {
		return nil, err
	}

	p.m.Lock()
	p.connection = conn
	p.notifyConnClose = make(chan *amqp.Error, 1)
	p.connection.NotifyClose(p.notifyConnClose)
	p.m.Unlock()

	p.logger.Info().Msg("connected to AMQP")
	return conn, nil
}

// handleReInit will wait for a channel error
// and then continuously attempt to re-initialize the channel.
func (p *AMQPPublisher) handleReInit(conn *amqp.Connection) bool {
	for {
		p.m.Lock()
		p.isReady = false
		p.m.Unlock()

		if err := p.init(conn); err != nil {
			p.logger.Warn().Err(err).Msg("failed to initialize AMQP channel, retrying")

			select {
			case <-p.done:
				return true
			case <-p.notifyConnClose:
				p.logger.Warn().Msg("AMQP connection closed, reconnecting")
				return false
			case <-time.After(reInitDelay):
			}
			continue
		}

		select {
		case <-p.done:
			return true
		case <-p.notifyConnClose:
			p.logger.Warn().Msg("AMQP connection closed, reconnecting")
			return false
		case <-p.notifyChanClose:
			p.logger.Warn().Msg("AMQP channel closed, re-running init")
		}
	}
}

func (p *AMQPPublisher) init(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}

	if err := ch.Confirm(false); err != nil {
		return err
	}

	err = ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return err
	}

	p.m.Lock()
	p.channel = ch
	p.notifyChanClose = make(chan *amqp.Error, 1)
	p.channel.NotifyClose(p.notifyChanClose)
	p.isReady = true
	p.m.Unlock()

	p.logger.Info().Str("exchange", p.exchange).Msg("AMQP publisher ready")
	return nil
}

// Publish sends evt and waits for the broker to confirm it, resending until ctx ends.
func (p *AMQPPublisher) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("events: failed to encode event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.ID,
		Timestamp:    evt.At,
		Type:         evt.Kind.String(),
		Body:         body,
	}

	for {
		p.m.Lock()
		ready, ch := p.isReady, p.channel
		p.m.Unlock()
		if !ready {
			return errNotConnected
		}

		confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, evt.Kind.String(), false, false, msg)
		switch {
		case err != nil:
			p.logger.Warn().Err(err).Msg("event publish failed, retrying")
		case confirm == nil:
			// channel is not in confirm mode
			return nil
		default:
			acked, err := p.awaitConfirm(ctx, confirm)
			if err != nil {
				return err
			}
			if acked {
				p.logger.Debug().Uint64("deliveryTag", confirm.DeliveryTag).Str("kind", evt.Kind.String()).Msg("event confirmed")
				return nil
			}
			p.logger.Warn().Uint64("deliveryTag", confirm.DeliveryTag).Msg("event nacked, retrying")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.done:
			return errShutdown
		case <-time.After(resendDelay):
		}
	}
}

// confirmation is the broker's pending answer to one publishing.
type confirmation interface {
	Done() <-chan struct{}
	Acked() bool
}

// awaitConfirm waits for c, giving up when ctx ends or the publisher closes. An
// abandoned confirmation is resolved by the library and needs no reader.
func (p *AMQPPublisher) awaitConfirm(ctx context.Context, c confirmation) (bool, error) {
	select {
	case <-c.Done():
		return c.Acked(), nil
	case <-ctx.Done():
		return false, ctx.Err()
	case <-p.done:
		return false, errShutdown
	}
}

// Close will cleanly shut down the channel and connection.
func (p *AMQPPublisher) Close() error {
	p.m.Lock()
	defer p.m.Unlock()

	if !p.isReady {
		return errAlreadyClosed
	}
	close(p.done)
	if err := p.channel.Close(); err != nil {
		return err
	}
	if err := p.connection.Close(); err != nil {
		return err
	}

	p.isReady = false
	return nil
}
