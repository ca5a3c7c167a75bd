package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/internal/domain/social"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/sharecode"
	"github.com/hsc-elite/progress-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// FOLLOW PEER COMMAND
// Imports a peer's share token (or full share link) into the caller's
// followed list. Importing the same peer again refreshes the stored
// snapshot in place; the list order is first-follow order.
// ══════════════════════════════════════════════════════════════════════════════

// FollowPeerCommand contains the follow input.
type FollowPeerCommand struct {
	// Username is the owner performing the follow.
	Username string

	// Token is a raw share token or a full share link with the
	// "#follow=" fragment.
	Token string
}

// Validate validates the command.
func (c FollowPeerCommand) Validate() error {
	if c.Username == "" {
		return errors.New("follow_peer: username is required")
	}
	if c.Token == "" {
		return shared.ErrInvalidToken
	}
	return nil
}

// FollowPeerResult contains the result of a follow.
type FollowPeerResult struct {
	// Peer is the normalized username of the imported snapshot.
	Peer profile.Username

	// Refreshed is true when an already-followed peer was updated in place.
	Refreshed bool

	// Profile is the updated owner profile.
	Profile *profile.Profile
}

// ──────────────────────────────────────────────────────────────────────────────
// HANDLER
// ──────────────────────────────────────────────────────────────────────────────

// FollowPeerHandler handles the FollowPeerCommand.
type FollowPeerHandler struct {
	store  profile.Store
	syncer MirrorScheduler
	bus    shared.EventPublisher
	clock  timeutil.Clock
}

// NewFollowPeerHandler creates a new FollowPeerHandler.
func NewFollowPeerHandler(
	store profile.Store,
	syncer MirrorScheduler,
	bus shared.EventPublisher,
	clock timeutil.Clock,
) *FollowPeerHandler {
	if clock == nil {
		clock = timeutil.System()
	}
	return &FollowPeerHandler{store: store, syncer: orNoop(syncer), bus: bus, clock: clock}
}

// Handle executes the follow command.
func (h *FollowPeerHandler) Handle(ctx context.Context, cmd FollowPeerCommand) (*FollowPeerResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	token, _ := sharecode.ExtractToken(cmd.Token)
	snapshot, err := sharecode.Decode(token)
	if err != nil {
		return nil, err
	}

	username := profile.NormalizeUsername(cmd.Username)
	owner, err := h.store.Get(ctx, username)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.ErrProfileNotFound
		}
		return nil, fmt.Errorf("follow_peer: load profile: %w", err)
	}

	res, err := social.Merge(owner, snapshot)
	if err != nil {
		return nil, err
	}

	owner.Touch(h.clock.Now())
	if err := h.store.Put(ctx, owner); err != nil {
		return nil, fmt.Errorf("follow_peer: save profile: %w", err)
	}
	h.syncer.Schedule(owner)

	if h.bus != nil {
		_ = h.bus.Publish(social.NewPeerFollowedEvent(username, res))
	}

	return &FollowPeerResult{
		Peer:      res.Peer,
		Refreshed: res.Refreshed,
		Profile:   owner.Clone(),
	}, nil
}
