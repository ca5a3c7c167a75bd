package command

import (
	"context"
	"fmt"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/sharecode"
	"github.com/hsc-elite/progress-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESTORE PROFILE COMMAND
// Unconditionally replaces the local identity with a decoded snapshot and
// opens a session for it. This is the device-migration path: export your
// own token on the old device, import it here. Any existing local profile
// with the same username is overwritten without a merge.
// ══════════════════════════════════════════════════════════════════════════════

// RestoreProfileCommand contains the restore input.
type RestoreProfileCommand struct {
	// Token is a raw share token or a full share link.
	Token string
}

// Validate validates the command.
func (c RestoreProfileCommand) Validate() error {
	if c.Token == "" {
		return shared.ErrInvalidToken
	}
	return nil
}

// RestoreProfileResult contains the result of a restore.
type RestoreProfileResult struct {
	// Profile is the adopted identity.
	Profile *profile.Profile
}

// ──────────────────────────────────────────────────────────────────────────────
// HANDLER
// ──────────────────────────────────────────────────────────────────────────────

// RestoreProfileHandler handles the RestoreProfileCommand.
type RestoreProfileHandler struct {
	store  profile.Store
	syncer MirrorScheduler
	bus    shared.EventPublisher
	clock  timeutil.Clock
}

// NewRestoreProfileHandler creates a new RestoreProfileHandler.
func NewRestoreProfileHandler(
	store profile.Store,
	syncer MirrorScheduler,
	bus shared.EventPublisher,
	clock timeutil.Clock,
) *RestoreProfileHandler {
	if clock == nil {
		clock = timeutil.System()
	}
	return &RestoreProfileHandler{store: store, syncer: orNoop(syncer), bus: bus, clock: clock}
}

// Handle executes the restore command.
func (h *RestoreProfileHandler) Handle(ctx context.Context, cmd RestoreProfileCommand) (*RestoreProfileResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	token, _ := sharecode.ExtractToken(cmd.Token)
	p, err := sharecode.Decode(token)
	if err != nil {
		return nil, err
	}

	// Share tokens never carry a password. When a local copy of the same
	// account exists, keep its password so the restored identity stays
	// loggable; otherwise the profile lands passwordless and a later mirror
	// pull can fill it in.
	if existing, getErr := h.store.Get(ctx, p.Username); getErr == nil && p.Password == "" {
		p.Password = existing.Password
	}

	p.Touch(h.clock.Now())
	if err := h.store.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("restore_profile: save profile: %w", err)
	}
	if err := h.store.SetSession(ctx, p.Username); err != nil {
		return nil, fmt.Errorf("restore_profile: open session: %w", err)
	}

	h.syncer.Schedule(p)
	if h.bus != nil {
		_ = h.bus.Publish(profile.NewRestoredEvent(p.Username))
	}

	return &RestoreProfileResult{Profile: p.Clone()}, nil
}
