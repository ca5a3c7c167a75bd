// Package syncer implements the debounced best-effort writer that mirrors
// local profile saves to the remote store. Every local save schedules a
// remote write after a quiet window; a newer save cancels and reschedules
// the pending timer (trailing debounce), so a burst of rapid toggles
// collapses into one remote write carrying the latest state.
//
// Failures are logged and reflected in the cloud status, never retried:
// the next local mutation reschedules a write naturally. There is no
// protection against an older in-flight write completing after a newer one;
// the mirror's last-write-wins upsert decides, and the accepted staleness
// window is the debounce interval itself.
package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/pkg/logger"
)

// DefaultWindow is the default debounce quiet period.
const DefaultWindow = 1500 * time.Millisecond

// Status is the passive cloud indicator surfaced to the user. It never
// blocks or fails local operations.
type Status struct {
	// Configured is false when no mirror is wired at all.
	Configured bool `json:"configured"`

	// Healthy reflects the outcome of the most recent health probe or write.
	Healthy bool `json:"healthy"`

	// Reason describes the current state ("connected", "network error", ...).
	Reason string `json:"reason,omitempty"`

	// LastSyncAt is when the last successful mirror write completed.
	LastSyncAt time.Time `json:"last_sync_at,omitempty"`

	// LastError is the message of the most recent failed write.
	LastError string `json:"last_error,omitempty"`
}

// Syncer debounces mirror writes. A nil mirror disables remote sync and the
// syncer degrades to a no-op that reports an unconfigured status.
type Syncer struct {
	mirror  profile.Mirror
	bus     shared.EventPublisher
	log     *logger.Logger
	window  time.Duration
	timeout time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *profile.Profile
	status  Status
	closed  bool
	wg      sync.WaitGroup
}

// New creates a Syncer with the given debounce window.
func New(mirror profile.Mirror, bus shared.EventPublisher, log *logger.Logger, window time.Duration) *Syncer {
	if log == nil {
		log = logger.Default()
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Syncer{
		mirror:  mirror,
		bus:     bus,
		log:     log,
		window:  window,
		timeout: 10 * time.Second,
		status:  Status{Configured: mirror != nil, Reason: "not synced yet"},
	}
}

// Schedule records the latest profile state and (re)starts the debounce
// timer. The profile is cloned, so the caller may keep mutating its copy.
func (s *Syncer) Schedule(p *profile.Profile) {
	if s.mirror == nil || p == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.pending = p.Clone()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, s.fire)
}

// fire runs on the timer goroutine when the quiet window elapses.
func (s *Syncer) fire() {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	if p == nil || s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	s.write(p)
}

// Flush pushes any pending state to the mirror immediately, bypassing the
// debounce window. Used on shutdown and logout so the last edits are not
// lost to a cancelled timer.
func (s *Syncer) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if p != nil {
		s.write(p)
	}
	s.wg.Wait()
}

// Close stops the syncer. Pending state is dropped; call Flush first when
// the last write matters.
func (s *Syncer) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
	s.mu.Unlock()
	s.wg.Wait()
}

// Status returns the current cloud indicator snapshot.
func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Probe runs a health check against the mirror and records the result.
func (s *Syncer) Probe(ctx context.Context) Status {
	if s.mirror == nil {
		return s.Status()
	}

	h := s.mirror.Health(ctx)
	s.mu.Lock()
	s.status.Healthy = h.OK
	s.status.Reason = h.Reason
	st := s.status
	s.mu.Unlock()
	return st
}

func (s *Syncer) write(p *profile.Profile) {
	writeID := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if h := s.mirror.Health(ctx); !h.OK {
		s.recordFailure(p.Username, writeID, h.Reason)
		return
	}

	if err := s.mirror.Upsert(ctx, p); err != nil {
		s.recordFailure(p.Username, writeID, err.Error())
		return
	}

	now := time.Now().UTC()
	s.mu.Lock()
	s.status.Healthy = true
	s.status.Reason = "connected"
	s.status.LastSyncAt = now
	s.status.LastError = ""
	s.mu.Unlock()

	s.log.Debug("mirror write completed",
		logger.String("username", p.Username.String()),
		logger.String("write_id", writeID),
	)
	if s.bus != nil {
		s.bus.Publish(shared.NewBaseEvent(shared.EventMirrorSyncCompleted, p.Username.String()))
	}
}

func (s *Syncer) recordFailure(username profile.Username, writeID, reason string) {
	s.mu.Lock()
	s.status.Healthy = false
	s.status.Reason = "offline"
	s.status.LastError = reason
	s.mu.Unlock()

	s.log.Warn("mirror write skipped",
		logger.String("username", username.String()),
		logger.String("write_id", writeID),
		logger.String("reason", reason),
	)
	if s.bus != nil {
		s.bus.Publish(shared.NewBaseEvent(shared.EventMirrorSyncFailed, username.String()))
	}
}
