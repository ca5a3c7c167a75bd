package command

import (
	"context"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/sharecode"
)

// ══════════════════════════════════════════════════════════════════════════════
// PROCESS SHARE LINK COMMAND
// The implicit follow path: someone opened the app through a shared link.
// With no active session there is nothing to merge into, so the outcome is
// reported rather than treated as an error. Reprocessing the same link is a
// refresh, never a duplicate, so the caller can always clear the fragment.
// ══════════════════════════════════════════════════════════════════════════════

// ProcessShareLinkCommand contains the inbound link or fragment.
type ProcessShareLinkCommand struct {
	// Link is the full URL, the fragment, or the bare token.
	Link string
}

// ProcessShareLinkResult describes what happened to the link.
type ProcessShareLinkResult struct {
	// Handled is true when a merge actually happened.
	Handled bool `json:"handled"`

	// NoSession is true when the link was valid but nobody was logged in.
	NoSession bool `json:"no_session"`

	// Peer and Refreshed mirror the follow result when Handled.
	Peer      profile.Username `json:"peer,omitempty"`
	Refreshed bool             `json:"refreshed"`

	// ClearFragment tells the caller to strip the fragment from its URL.
	// Set whenever the link carried a token, handled or not.
	ClearFragment bool `json:"clear_fragment"`
}

// ──────────────────────────────────────────────────────────────────────────────
// HANDLER
// ──────────────────────────────────────────────────────────────────────────────

// ProcessShareLinkHandler handles inbound share links by delegating to the
// follow handler for the active session.
type ProcessShareLinkHandler struct {
	store  profile.Store
	follow *FollowPeerHandler
}

// NewProcessShareLinkHandler creates a new ProcessShareLinkHandler.
func NewProcessShareLinkHandler(store profile.Store, follow *FollowPeerHandler) *ProcessShareLinkHandler {
	return &ProcessShareLinkHandler{store: store, follow: follow}
}

// Handle executes the link processing command.
func (h *ProcessShareLinkHandler) Handle(ctx context.Context, cmd ProcessShareLinkCommand) (*ProcessShareLinkResult, error) {
	token, found := sharecode.ExtractToken(cmd.Link)
	if !found || token == "" {
		return &ProcessShareLinkResult{}, nil
	}

	session, err := h.store.Session(ctx)
	if err != nil {
		if shared.IsNotFound(err) {
			return &ProcessShareLinkResult{NoSession: true, ClearFragment: true}, nil
		}
		return nil, err
	}

	res, err := h.follow.Handle(ctx, FollowPeerCommand{
		Username: session.String(),
		Token:    token,
	})
	if err != nil {
		return nil, err
	}

	return &ProcessShareLinkResult{
		Handled:       true,
		Peer:          res.Peer,
		Refreshed:     res.Refreshed,
		ClearFragment: true,
	}, nil
}
