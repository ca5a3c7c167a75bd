package command

import (
	"context"
	"fmt"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOG IN COMMAND
// Opens a session for an existing account. When the account is missing
// locally but present on the mirror, the remote copy is adopted first, so a
// student can log in on a fresh device.
// ══════════════════════════════════════════════════════════════════════════════

// LogInCommand contains login credentials.
type LogInCommand struct {
	Username string
	Password string
}

// Validate validates the command.
func (c LogInCommand) Validate() error {
	return profile.ValidateCredentials(c.Username, c.Password)
}

// LogInResult contains the result of a login.
type LogInResult struct {
	// Profile is the authenticated profile.
	Profile *profile.Profile

	// FromMirror is true when the remote copy was adopted, either because
	// the account was absent locally or because the mirror copy is treated
	// as the fresher one.
	FromMirror bool
}

// ──────────────────────────────────────────────────────────────────────────────
// HANDLER
// ──────────────────────────────────────────────────────────────────────────────

// LogInHandler handles the LogInCommand.
type LogInHandler struct {
	store  profile.Store
	mirror profile.Mirror
	syncer MirrorScheduler
	clock  timeutil.Clock
}

// NewLogInHandler creates a new LogInHandler.
func NewLogInHandler(
	store profile.Store,
	mirror profile.Mirror,
	syncer MirrorScheduler,
	clock timeutil.Clock,
) *LogInHandler {
	if clock == nil {
		clock = timeutil.System()
	}
	return &LogInHandler{
		store:  store,
		mirror: mirror,
		syncer: orNoop(syncer),
		clock:  clock,
	}
}

// Handle executes the log in command.
func (h *LogInHandler) Handle(ctx context.Context, cmd LogInCommand) (*LogInResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	username := profile.NormalizeUsername(cmd.Username)

	// The mirror copy wins when reachable: another device may have synced
	// newer progress since this one last wrote. An unreachable mirror
	// silently degrades to the local copy.
	var p *profile.Profile
	fromMirror := false
	if h.mirror != nil {
		if remote, err := h.mirror.Get(ctx, username); err == nil {
			p = remote
			fromMirror = true
		}
	}
	if p == nil {
		local, err := h.store.Get(ctx, username)
		if err != nil {
			if shared.IsNotFound(err) {
				return nil, shared.ErrProfileNotFound
			}
			return nil, fmt.Errorf("log_in: load profile: %w", err)
		}
		p = local
	}

	if err := p.Authenticate(cmd.Password); err != nil {
		return nil, err
	}

	p.Touch(h.clock.Now())
	if err := h.store.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("log_in: save profile: %w", err)
	}
	if err := h.store.SetSession(ctx, username); err != nil {
		return nil, fmt.Errorf("log_in: open session: %w", err)
	}

	h.syncer.Schedule(p)

	return &LogInResult{Profile: p.Clone(), FromMirror: fromMirror}, nil
}
