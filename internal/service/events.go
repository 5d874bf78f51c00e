package service

import (
	"context"
	"time"

	"tripplanner-api/internal/events"

	"github.com/rs/zerolog"
)

const publishTimeout = 2 * time.Second

// emitter publishes UI events without letting broker trouble fail the request.
type emitter struct {
	publisher events.Publisher
	logger    zerolog.Logger
}

func newEmitter(publisher events.Publisher, logger zerolog.Logger) emitter {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return emitter{publisher: publisher, logger: logger}
}

func (e emitter) emit(kind events.Kind, session string, data map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := e.publisher.Publish(ctx, events.New(kind, session, data)); err != nil {
		e.logger.Warn().Err(err).Str("kind", kind.String()).Str("session", session).Msg("failed to publish event")
	}
}
