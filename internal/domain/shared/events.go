package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened in the domain and drives the best-effort mirror synchronization.
const (
	// Profile events
	EventProfileRegistered EventType = "profile.registered"
	EventProfileRestored   EventType = "profile.restored"
	EventProgressUpdated   EventType = "profile.progress_updated"
	EventLevelUp           EventType = "profile.level_up"

	// Social events
	EventPeerFollowed  EventType = "social.peer_followed"
	EventPeerRefreshed EventType = "social.peer_refreshed"

	// System events
	EventMirrorSyncCompleted EventType = "system.mirror_sync_completed"
	EventMirrorSyncFailed    EventType = "system.mirror_sync_failed"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	// For profile events this is the normalized username.
	AggregateID() string

	// Payload returns the event data as a map for logging and serialization.
	Payload() map[string]interface{}
}

// EventHandler processes a domain event. Handlers must not panic; the bus
// recovers and logs but the event is considered consumed either way.
type EventHandler func(event Event) error

// BaseEvent provides common event functionality.
type BaseEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// NewBaseEvent creates a new base event with a fresh identifier.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// EventType implements Event.
func (e BaseEvent) EventType() EventType { return e.Type }

// OccurredAt implements Event.
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// AggregateID implements Event.
func (e BaseEvent) AggregateID() string { return e.AggregateId }

// Payload implements Event with the base fields only; concrete events
// override this to add their own data.
func (e BaseEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":           e.ID,
		"type":         string(e.Type),
		"aggregate_id": e.AggregateId,
	}
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	Publish(event Event) error
}
