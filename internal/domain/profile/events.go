package profile

import (
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// RegisteredEvent is published when a new profile is created at signup.
type RegisteredEvent struct {
	shared.BaseEvent
	Username Username
}

// NewRegisteredEvent creates a RegisteredEvent.
func NewRegisteredEvent(username Username) RegisteredEvent {
	return RegisteredEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventProfileRegistered, username.String()),
		Username:  username,
	}
}

// Payload implements shared.Event.
func (e RegisteredEvent) Payload() map[string]interface{} {
	p := e.BaseEvent.Payload()
	p["username"] = e.Username.String()
	return p
}

// ProgressUpdatedEvent is published on every progress mutation.
type ProgressUpdatedEvent struct {
	shared.BaseEvent
	Username Username
	OldXP    int
	NewXP    int
}

// NewProgressUpdatedEvent creates a ProgressUpdatedEvent.
func NewProgressUpdatedEvent(username Username, oldXP, newXP int) ProgressUpdatedEvent {
	return ProgressUpdatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventProgressUpdated, username.String()),
		Username:  username,
		OldXP:     oldXP,
		NewXP:     newXP,
	}
}

// Payload implements shared.Event.
func (e ProgressUpdatedEvent) Payload() map[string]interface{} {
	p := e.BaseEvent.Payload()
	p["username"] = e.Username.String()
	p["old_xp"] = e.OldXP
	p["new_xp"] = e.NewXP
	return p
}

// LevelUpEvent is published when a progress mutation crosses a band boundary
// upwards.
type LevelUpEvent struct {
	shared.BaseEvent
	Username  Username
	OldLevel  int
	NewLevel  int
	LevelName string
}

// NewLevelUpEvent creates a LevelUpEvent.
func NewLevelUpEvent(username Username, oldLevel, newLevel int, levelName string) LevelUpEvent {
	return LevelUpEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventLevelUp, username.String()),
		Username:  username,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		LevelName: levelName,
	}
}

// Payload implements shared.Event.
func (e LevelUpEvent) Payload() map[string]interface{} {
	p := e.BaseEvent.Payload()
	p["username"] = e.Username.String()
	p["old_level"] = e.OldLevel
	p["new_level"] = e.NewLevel
	p["level_name"] = e.LevelName
	return p
}

// RestoredEvent is published when a local identity is replaced from an
// imported share token.
type RestoredEvent struct {
	shared.BaseEvent
	Username Username
}

// NewRestoredEvent creates a RestoredEvent.
func NewRestoredEvent(username Username) RestoredEvent {
	return RestoredEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventProfileRestored, username.String()),
		Username:  username,
	}
}
