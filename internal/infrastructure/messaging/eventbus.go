// Package messaging implements the in-memory event bus for the progress hub.
// The engine is single-instance and event handling is synchronous: handlers
// run on the publisher's goroutine in subscription order, which matches the
// single-threaded event-driven model of the application.
package messaging

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/pkg/logger"
)

// ErrEventBusClosed is returned when publishing or subscribing after Close.
var ErrEventBusClosed = errors.New("messaging: event bus is closed")

// EventBus dispatches domain events to subscribed handlers.
type EventBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	log         *logger.Logger
	closed      bool
}

// NewEventBus creates a new event bus.
func NewEventBus(log *logger.Logger) *EventBus {
	if log == nil {
		log = logger.Default()
	}
	return &EventBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		log:      log,
	}
}

// Subscribe registers a handler for a specific event type.
func (b *EventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("messaging: handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// SubscribeAll registers a handler for every event.
func (b *EventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("messaging: handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}
	b.allHandlers = append(b.allHandlers, handler)
	return nil
}

// Publish dispatches an event to all matching handlers. A handler error or
// panic is logged and does not stop delivery to the remaining handlers.
func (b *EventBus) Publish(event shared.Event) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrEventBusClosed
	}
	targets := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	targets = append(targets, b.handlers[event.EventType()]...)
	targets = append(targets, b.allHandlers...)
	b.mu.RUnlock()

	for _, h := range targets {
		b.dispatch(h, event)
	}
	return nil
}

func (b *EventBus) dispatch(h shared.EventHandler, event shared.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked",
				logger.String("event_type", string(event.EventType())),
				logger.Err(fmt.Errorf("%v", r)),
			)
		}
	}()

	if err := h(event); err != nil {
		b.log.Warn("event handler failed",
			logger.String("event_type", string(event.EventType())),
			logger.String("aggregate_id", event.AggregateID()),
			logger.Err(err),
		)
	}
}

// Close stops the bus; further publishes and subscribes fail.
func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}
