package command

import (
	"context"
	"fmt"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// SIGN UP COMMAND
// Registers a new local account and opens a session for it. Usernames are
// case-insensitive: the normalized form is the identity everywhere.
// ══════════════════════════════════════════════════════════════════════════════

// SignUpCommand contains the data for registration.
type SignUpCommand struct {
	// Username is the raw username as typed. It is normalized before use.
	Username string

	// Password is stored as entered and compared verbatim on login.
	Password string
}

// Validate validates the command.
func (c SignUpCommand) Validate() error {
	return profile.ValidateCredentials(c.Username, c.Password)
}

// SignUpResult contains the result of registration.
type SignUpResult struct {
	// Profile is the freshly created profile.
	Profile *profile.Profile
}

// ──────────────────────────────────────────────────────────────────────────────
// HANDLER
// ──────────────────────────────────────────────────────────────────────────────

// SignUpHandler handles the SignUpCommand.
type SignUpHandler struct {
	store  profile.Store
	mirror profile.Mirror
	syncer MirrorScheduler
	bus    shared.EventPublisher
	clock  timeutil.Clock
}

// NewSignUpHandler creates a new SignUpHandler. mirror and syncer may be nil
// when the application runs local-only.
func NewSignUpHandler(
	store profile.Store,
	mirror profile.Mirror,
	syncer MirrorScheduler,
	bus shared.EventPublisher,
	clock timeutil.Clock,
) *SignUpHandler {
	if clock == nil {
		clock = timeutil.System()
	}
	return &SignUpHandler{
		store:  store,
		mirror: mirror,
		syncer: orNoop(syncer),
		bus:    bus,
		clock:  clock,
	}
}

// Handle executes the sign up command.
func (h *SignUpHandler) Handle(ctx context.Context, cmd SignUpCommand) (*SignUpResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	username := profile.NormalizeUsername(cmd.Username)
	if !username.IsValid() {
		return nil, shared.ErrMissingCredentials
	}

	// Local uniqueness is authoritative.
	if _, err := h.store.Get(ctx, username); err == nil {
		return nil, shared.ErrProfileAlreadyExists
	} else if !shared.IsNotFound(err) {
		return nil, fmt.Errorf("sign_up: check local store: %w", err)
	}

	// Best-effort remote uniqueness. An unreachable mirror never blocks
	// registration; the eventual upsert is last-write-wins anyway.
	if h.mirror != nil {
		if _, err := h.mirror.Get(ctx, username); err == nil {
			return nil, shared.ErrProfileAlreadyExists
		}
	}

	p := profile.New(username, cmd.Password, h.clock.Now())
	if err := h.store.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("sign_up: save profile: %w", err)
	}
	if err := h.store.SetSession(ctx, username); err != nil {
		return nil, fmt.Errorf("sign_up: open session: %w", err)
	}

	h.syncer.Schedule(p)
	if h.bus != nil {
		_ = h.bus.Publish(profile.NewRegisteredEvent(username))
	}

	return &SignUpResult{Profile: p.Clone()}, nil
}
