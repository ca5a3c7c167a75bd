package command

import (
	"context"
	"fmt"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOG OUT COMMAND
// Closes the active session. Pending mirror writes are flushed first so the
// last edits of the session are not lost to a cancelled debounce timer.
// Stored profiles are retained; logout only clears the session pointer.
// ══════════════════════════════════════════════════════════════════════════════

// LogOutHandler handles logout.
type LogOutHandler struct {
	store  profile.Store
	syncer MirrorScheduler
}

// NewLogOutHandler creates a new LogOutHandler.
func NewLogOutHandler(store profile.Store, syncer MirrorScheduler) *LogOutHandler {
	return &LogOutHandler{store: store, syncer: orNoop(syncer)}
}

// Handle executes logout. Logging out with no active session is a no-op.
func (h *LogOutHandler) Handle(ctx context.Context) error {
	h.syncer.Flush(ctx)
	if err := h.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("log_out: clear session: %w", err)
	}
	return nil
}
