package syncer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
)

type fakeMirror struct {
	mu      sync.Mutex
	writes  []*profile.Profile
	healthy bool
	failure error
}

func newFakeMirror() *fakeMirror {
	return &fakeMirror{healthy: true}
}

func (m *fakeMirror) Get(context.Context, profile.Username) (*profile.Profile, error) {
	return nil, errors.New("not implemented")
}

func (m *fakeMirror) Upsert(_ context.Context, p *profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return m.failure
	}
	m.writes = append(m.writes, p.Clone())
	return nil
}

func (m *fakeMirror) Health(context.Context) profile.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.healthy {
		return profile.HealthStatus{OK: false, Reason: "network error"}
	}
	return profile.HealthStatus{OK: true, Reason: "connected"}
}

func (m *fakeMirror) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}

func (m *fakeMirror) lastWrite() *profile.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return nil
	}
	return m.writes[len(m.writes)-1]
}

func testProfile(username string, xp int) *profile.Profile {
	p := profile.New(profile.NormalizeUsername(username), "pw", time.Now())
	p.XP = xp
	return p
}

func TestSyncer_DebouncesBursts(t *testing.T) {
	mirror := newFakeMirror()
	s := New(mirror, nil, nil, 30*time.Millisecond)
	defer s.Close()

	// A burst of rapid saves collapses into a single write carrying the
	// latest state.
	s.Schedule(testProfile("rakib", 10))
	s.Schedule(testProfile("rakib", 20))
	s.Schedule(testProfile("rakib", 30))

	assert.Eventually(t, func() bool {
		return mirror.writeCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 30, mirror.lastWrite().XP)

	st := s.Status()
	assert.True(t, st.Healthy)
	assert.Equal(t, "connected", st.Reason)
	assert.False(t, st.LastSyncAt.IsZero())
}

func TestSyncer_NewSaveReschedules(t *testing.T) {
	mirror := newFakeMirror()
	s := New(mirror, nil, nil, 50*time.Millisecond)
	defer s.Close()

	s.Schedule(testProfile("rakib", 1))
	time.Sleep(25 * time.Millisecond)
	s.Schedule(testProfile("rakib", 2))
	time.Sleep(35 * time.Millisecond)

	// The first timer was cancelled; the quiet window restarted at the
	// second save, so nothing has flushed yet.
	assert.Equal(t, 0, mirror.writeCount())

	assert.Eventually(t, func() bool {
		return mirror.writeCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, mirror.lastWrite().XP)
}

func TestSyncer_Flush(t *testing.T) {
	mirror := newFakeMirror()
	s := New(mirror, nil, nil, time.Hour)
	defer s.Close()

	s.Schedule(testProfile("rakib", 42))
	s.Flush(context.Background())

	require.Equal(t, 1, mirror.writeCount())
	assert.Equal(t, 42, mirror.lastWrite().XP)

	// Flushing with nothing pending is a no-op.
	s.Flush(context.Background())
	assert.Equal(t, 1, mirror.writeCount())
}

func TestSyncer_UnhealthyMirrorSkipsWrite(t *testing.T) {
	mirror := newFakeMirror()
	mirror.healthy = false
	s := New(mirror, nil, nil, 10*time.Millisecond)
	defer s.Close()

	s.Schedule(testProfile("rakib", 5))

	assert.Eventually(t, func() bool {
		return !s.Status().Healthy && s.Status().LastError != ""
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, mirror.writeCount())
	assert.Equal(t, "offline", s.Status().Reason)
}

func TestSyncer_WriteFailureRecorded(t *testing.T) {
	mirror := newFakeMirror()
	mirror.failure = errors.New("connection reset")
	s := New(mirror, nil, nil, 10*time.Millisecond)
	defer s.Close()

	s.Schedule(testProfile("rakib", 5))

	assert.Eventually(t, func() bool {
		return s.Status().LastError == "connection reset"
	}, time.Second, 5*time.Millisecond)
	assert.False(t, s.Status().Healthy)
}

func TestSyncer_NilMirrorIsNoop(t *testing.T) {
	s := New(nil, nil, nil, time.Millisecond)
	defer s.Close()

	s.Schedule(testProfile("rakib", 5))
	s.Flush(context.Background())

	st := s.Status()
	assert.False(t, st.Configured)
}

func TestSyncer_CloseDropsPending(t *testing.T) {
	mirror := newFakeMirror()
	s := New(mirror, nil, nil, time.Hour)

	s.Schedule(testProfile("rakib", 5))
	s.Close()

	assert.Equal(t, 0, mirror.writeCount())

	// Scheduling after close does nothing.
	s.Schedule(testProfile("rakib", 6))
	assert.Equal(t, 0, mirror.writeCount())
}
