package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/alphaquantum/pkg/domain/events"
	"github.com/amirasaad/alphaquantum/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously in the caller's goroutine.
type MemoryEventBus struct {
	handlers  map[string][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a synchronous in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers:  make(map[string][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
// Handler errors and panics are logged, never returned.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	b.mu.Lock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[event.Type()]...)
	b.published = append(b.published, event)
	b.mu.Unlock()

	for _, handler := range handlers {
		run(ctx, b.logger, handler, event)
	}
	return nil
}

// ClearPublished clears the list of published events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns the events emitted so far.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)

type envelope struct {
	ctx   context.Context
	event events.Event
}

// MemoryAsyncEventBus queues events and dispatches them on background goroutines.
type MemoryAsyncEventBus struct {
	handlers map[string][]eventbus.HandlerFunc
	mu       sync.RWMutex
	eventCh  chan envelope
	wg       sync.WaitGroup
	log      *slog.Logger
}

// NewWithMemoryAsync creates an asynchronous in-memory event bus. Close
// drains it.
func NewWithMemoryAsync(logger *slog.Logger) *MemoryAsyncEventBus {
	b := &MemoryAsyncEventBus{
		handlers: make(map[string][]eventbus.HandlerFunc),
		eventCh:  make(chan envelope, 100),
		log:      logger.With("event-bus", "memory-async"),
	}
	b.wg.Add(1)
	go b.process()
	return b
}

func (b *MemoryAsyncEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}

// Emit queues the event. The context is detached from the caller's
// cancellation since handlers outlive the request.
func (b *MemoryAsyncEventBus) Emit(ctx context.Context, event events.Event) error {
	select {
	case b.eventCh <- envelope{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events and waits for queued ones to be handled.
func (b *MemoryAsyncEventBus) Close() {
	close(b.eventCh)
	b.wg.Wait()
}

func (b *MemoryAsyncEventBus) process() {
	defer b.wg.Done()
	var inflight sync.WaitGroup
	for w := range b.eventCh {
		b.mu.RLock()
		handlers := append([]eventbus.HandlerFunc(nil), b.handlers[w.event.Type()]...)
		b.mu.RUnlock()
		inflight.Add(1)
		go func(w envelope) {
			defer inflight.Done()
			for _, handler := range handlers {
				run(w.ctx, b.log, handler, w.event)
			}
		}(w)
	}
	inflight.Wait()
}

var _ eventbus.Bus = (*MemoryAsyncEventBus)(nil)

func run(ctx context.Context, log *slog.Logger, handler eventbus.HandlerFunc, event events.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic recovered in event handler", "type", event.Type(), "panic", r)
		}
	}()
	if err := handler(ctx, event); err != nil {
		log.Error("failed to process event", "type", event.Type(), "error", err)
	}
}
