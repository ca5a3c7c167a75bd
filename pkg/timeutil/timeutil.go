// Package timeutil provides a clock abstraction and timezone helpers for the
// Dhaka timezone (UTC+6), where the HSC exam calendar lives. The clock makes
// time-dependent components (lastActive stamps, the debounced mirror writer)
// deterministic in tests.
// No external dependencies - uses only standard library.
package timeutil

import (
	"sync"
	"time"
)

// DhakaTZ is the Bangladesh timezone (UTC+6, no DST).
var DhakaTZ = time.FixedZone("Asia/Dhaka", 6*60*60)

// Clock abstracts wall-clock access.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// System returns the real clock.
func System() Clock { return SystemClock{} }

// FakeClock is a manually advanced clock for tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock creates a fake clock frozen at the given time.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now implements Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the fake clock forward.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ToDhaka converts a time to the Dhaka timezone.
func ToDhaka(t time.Time) time.Time {
	return t.In(DhakaTZ)
}

// FromEpochMillis converts epoch milliseconds (the profile lastActive wire
// format) to a time.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// EpochMillis converts a time to epoch milliseconds.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}
