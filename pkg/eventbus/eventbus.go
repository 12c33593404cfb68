package eventbus

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/events"
)

// HandlerFunc handles one published event.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	// Register adds a handler for an event type.
	Register(eventType string, handler HandlerFunc)
	// Emit dispatches event to the handlers registered for its type.
	Emit(ctx context.Context, event events.Event) error
}
