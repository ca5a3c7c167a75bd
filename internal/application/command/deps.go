// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
)

// MirrorScheduler schedules best-effort remote writes after a local save.
// Scheduling never blocks and never fails the local operation.
type MirrorScheduler interface {
	// Schedule queues the given profile state for a debounced remote write.
	Schedule(p *profile.Profile)

	// Flush pushes any pending state immediately. Used on logout/shutdown.
	Flush(ctx context.Context)
}

// noopScheduler is used when no mirror is configured.
type noopScheduler struct{}

func (noopScheduler) Schedule(*profile.Profile)  {}
func (noopScheduler) Flush(context.Context)      {}

func orNoop(s MirrorScheduler) MirrorScheduler {
	if s == nil {
		return noopScheduler{}
	}
	return s
}
