package profile

import (
	"context"
)

// Store is the durable local profile store: the durability floor. Writes to
// it are synchronous and must never be skipped because the remote mirror is
// down. It also owns the single active-session pointer.
type Store interface {
	// Get returns the stored profile for a normalized username, or
	// shared.ErrNotFound.
	Get(ctx context.Context, username Username) (*Profile, error)

	// Put writes a profile unconditionally, keyed by its username.
	Put(ctx context.Context, p *Profile) error

	// Session returns the username of the active session, or
	// shared.ErrNoActiveSession.
	Session(ctx context.Context) (Username, error)

	// SetSession points the active session at a username.
	SetSession(ctx context.Context, username Username) error

	// ClearSession removes the session pointer; stored profiles are retained.
	ClearSession(ctx context.Context) error
}

// HealthStatus is the mirror's reachability report, surfaced to the user as
// a passive cloud status indicator.
type HealthStatus struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// Mirror is the optional best-effort remote profile store. Every operation
// is an unconditional upsert or read by username; the mirror applies
// last-write-wins semantics with no conflict detection.
type Mirror interface {
	// Get returns the remote profile for a normalized username, or
	// shared.ErrNotFound when the row is absent.
	Get(ctx context.Context, username Username) (*Profile, error)

	// Upsert writes a profile row, idempotent by username.
	Upsert(ctx context.Context, p *Profile) error

	// Health reports whether remote operations should be attempted at all.
	Health(ctx context.Context) HealthStatus
}
