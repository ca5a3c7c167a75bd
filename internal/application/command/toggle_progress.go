package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
	"github.com/hsc-elite/progress-hub/internal/domain/leveling"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// TOGGLE PROGRESS COMMANDS
// Flip a topic checkoff or a chapter milestone for the active profile. XP is
// always recomputed from the full progress state, never incremented, so
// toggling off subtracts exactly what toggling on added and replays are
// idempotent.
// ══════════════════════════════════════════════════════════════════════════════

// ToggleTopicCommand flips one topic checkbox.
type ToggleTopicCommand struct {
	Username string
	Subject  string
	Chapter  string
	Topic    string
}

// Validate validates the command.
func (c ToggleTopicCommand) Validate() error {
	if c.Username == "" {
		return errors.New("toggle_topic: username is required")
	}
	if c.Subject == "" || c.Chapter == "" || c.Topic == "" {
		return errors.New("toggle_topic: subject, chapter and topic are required")
	}
	return nil
}

// ToggleMilestoneCommand flips one chapter-level milestone checkbox.
type ToggleMilestoneCommand struct {
	Username  string
	Subject   string
	Chapter   string
	Milestone curriculum.MilestoneType
}

// Validate validates the command.
func (c ToggleMilestoneCommand) Validate() error {
	if c.Username == "" {
		return errors.New("toggle_milestone: username is required")
	}
	if c.Subject == "" || c.Chapter == "" {
		return errors.New("toggle_milestone: subject and chapter are required")
	}
	if !curriculum.IsValidMilestone(c.Milestone) {
		return fmt.Errorf("toggle_milestone: unknown milestone type: %s", c.Milestone)
	}
	return nil
}

// ToggleResult describes the state after a toggle.
type ToggleResult struct {
	// Done is the new state of the flipped checkbox.
	Done bool

	// OldXP and NewXP bracket the recompute.
	OldXP int
	NewXP int

	// LeveledUp is true when the toggle crossed a band boundary upward.
	LeveledUp bool

	// Level is the band the profile sits in after the toggle.
	Level leveling.Status

	// Profile is the updated profile.
	Profile *profile.Profile
}

// ──────────────────────────────────────────────────────────────────────────────
// HANDLER
// ──────────────────────────────────────────────────────────────────────────────

// ToggleProgressHandler handles both toggle commands. They share every
// dependency and differ only in which key they flip.
type ToggleProgressHandler struct {
	store   profile.Store
	syncer  MirrorScheduler
	bus     shared.EventPublisher
	catalog *curriculum.Catalog
	levels  leveling.Table
	clock   timeutil.Clock
}

// NewToggleProgressHandler creates a new ToggleProgressHandler.
func NewToggleProgressHandler(
	store profile.Store,
	syncer MirrorScheduler,
	bus shared.EventPublisher,
	catalog *curriculum.Catalog,
	levels leveling.Table,
	clock timeutil.Clock,
) *ToggleProgressHandler {
	if clock == nil {
		clock = timeutil.System()
	}
	return &ToggleProgressHandler{
		store:   store,
		syncer:  orNoop(syncer),
		bus:     bus,
		catalog: catalog,
		levels:  levels,
		clock:   clock,
	}
}

// HandleTopic executes a topic toggle.
func (h *ToggleProgressHandler) HandleTopic(ctx context.Context, cmd ToggleTopicCommand) (*ToggleResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !h.catalog.HasTopic(cmd.Subject, cmd.Chapter, cmd.Topic) {
		return nil, shared.NewDomainError("progress", "ToggleTopic", shared.ErrInvalidInput,
			fmt.Sprintf("unknown topic %q in %s/%s", cmd.Topic, cmd.Subject, cmd.Chapter))
	}

	return h.apply(ctx, cmd.Username, func(s profile.ProgressState) (profile.ProgressState, bool) {
		next := s.ToggleTopic(cmd.Subject, cmd.Chapter, cmd.Topic)
		return next, next.TopicDone(cmd.Subject, cmd.Chapter, cmd.Topic)
	})
}

// HandleMilestone executes a milestone toggle.
func (h *ToggleProgressHandler) HandleMilestone(ctx context.Context, cmd ToggleMilestoneCommand) (*ToggleResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !h.catalog.HasChapter(cmd.Subject, cmd.Chapter) {
		return nil, shared.NewDomainError("progress", "ToggleMilestone", shared.ErrInvalidInput,
			fmt.Sprintf("unknown chapter %q in %s", cmd.Chapter, cmd.Subject))
	}

	return h.apply(ctx, cmd.Username, func(s profile.ProgressState) (profile.ProgressState, bool) {
		next := s.ToggleMilestone(cmd.Subject, cmd.Chapter, cmd.Milestone)
		return next, next.MilestoneDone(cmd.Subject, cmd.Chapter, cmd.Milestone)
	})
}

func (h *ToggleProgressHandler) apply(
	ctx context.Context,
	rawUsername string,
	flip func(profile.ProgressState) (profile.ProgressState, bool),
) (*ToggleResult, error) {
	username := profile.NormalizeUsername(rawUsername)

	p, err := h.store.Get(ctx, username)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.ErrProfileNotFound
		}
		return nil, fmt.Errorf("toggle: load profile: %w", err)
	}

	oldBand := h.levels.Current(p.XP)

	next, done := flip(p.Progress)
	oldXP := p.ApplyProgress(next, h.clock.Now())
	newBand := h.levels.Current(p.XP)

	if err := h.store.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("toggle: save profile: %w", err)
	}
	h.syncer.Schedule(p)

	leveledUp := newBand.Level > oldBand.Level
	if h.bus != nil {
		_ = h.bus.Publish(profile.NewProgressUpdatedEvent(username, oldXP, p.XP))
		if leveledUp {
			_ = h.bus.Publish(profile.NewLevelUpEvent(username, oldBand.Level, newBand.Level, newBand.Name))
		}
	}

	return &ToggleResult{
		Done:      done,
		OldXP:     oldXP,
		NewXP:     p.XP,
		LeveledUp: leveledUp,
		Level:     h.levels.StatusFor(p.XP),
		Profile:   p.Clone(),
	}, nil
}
