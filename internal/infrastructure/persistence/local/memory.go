package local

import (
	"context"
	"sync"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// MemoryStore is an in-memory implementation of profile.Store, used in tests
// and as a fallback when no database path is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[profile.Username]*profile.Profile
	session  profile.Username
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[profile.Username]*profile.Profile)}
}

// Get implements profile.Store.
func (s *MemoryStore) Get(ctx context.Context, username profile.Username) (*profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[username]
	if !ok {
		return nil, shared.ErrProfileNotFound
	}
	return p.Clone(), nil
}

// Put implements profile.Store.
func (s *MemoryStore) Put(ctx context.Context, p *profile.Profile) error {
	if p == nil || !p.Username.IsValid() {
		return shared.NewDomainError("local", "Put", shared.ErrInvalidInput, "profile has no username")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.Username] = p.Clone()
	return nil
}

// Session implements profile.Store.
func (s *MemoryStore) Session(ctx context.Context) (profile.Username, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.IsValid() {
		return "", shared.ErrNoActiveSession
	}
	return s.session, nil
}

// SetSession implements profile.Store.
func (s *MemoryStore) SetSession(ctx context.Context, username profile.Username) error {
	if !username.IsValid() {
		return shared.NewDomainError("local", "SetSession", shared.ErrInvalidInput, "empty username")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = username
	return nil
}

// ClearSession implements profile.Store.
func (s *MemoryStore) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = ""
	return nil
}
