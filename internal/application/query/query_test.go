package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
	"github.com/hsc-elite/progress-hub/internal/domain/leveling"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/internal/domain/social"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/persistence/local"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/sharecode"
)

var (
	catalog = curriculum.DefaultCatalog()
	levels  = leveling.DefaultTable()
	now     = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
)

func seedProfile(t *testing.T, store profile.Store, username string, topics int) *profile.Profile {
	t.Helper()

	p := profile.New(profile.NormalizeUsername(username), "secret", now)
	state := p.Progress
	keys := []string{"T-01: Vector Types", "T-02: Resultant", "T-03: Resolution", "T-04: River Problems"}
	require.LessOrEqual(t, topics, len(keys))
	for i := 0; i < topics; i++ {
		state = state.ToggleTopic("Physics 1st", "Ch2: Vectors", keys[i])
	}
	p.ApplyProgress(state, now)
	require.NoError(t, store.Put(context.Background(), p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// GET PROFILE
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProfile(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "Rafi", 3)

	h := NewGetProfileHandler(store, levels)
	dto, err := h.Handle(context.Background(), GetProfileQuery{Username: "  RAFI "})
	require.NoError(t, err)

	assert.Equal(t, "rafi", dto.Username)
	assert.Equal(t, 30, dto.XP)
	assert.Equal(t, 1, dto.Level.Level)
	assert.Equal(t, "Novice", dto.Level.Name)
	assert.Equal(t, 0, dto.FollowedCount)
	assert.Equal(t, now.UnixMilli(), dto.LastActive)
}

func TestGetProfileNotFound(t *testing.T) {
	h := NewGetProfileHandler(local.NewMemoryStore(), levels)
	_, err := h.Handle(context.Background(), GetProfileQuery{Username: "ghost"})
	assert.ErrorIs(t, err, shared.ErrProfileNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET STATS
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "rafi", 3)

	h := NewGetStatsHandler(store, catalog)
	res, err := h.Handle(context.Background(), GetStatsQuery{Username: "rafi"})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Stats.CompletedTopics)
	assert.Equal(t, catalog.TotalTopics(), res.Stats.TotalTopics)
	assert.Equal(t, 3, res.Stats.Subjects["Physics 1st"].Done)
	assert.Empty(t, res.Chapters)
}

func TestGetStatsWithChapterBreakdown(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "rafi", 2)

	h := NewGetStatsHandler(store, catalog)
	res, err := h.Handle(context.Background(), GetStatsQuery{Username: "rafi", Subject: "Physics 1st"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Chapters)

	var vectors *profile.ChapterStats
	for i := range res.Chapters {
		if res.Chapters[i].Name == "Ch2: Vectors" {
			vectors = &res.Chapters[i]
		}
	}
	require.NotNil(t, vectors)
	assert.Equal(t, 2, vectors.Done)
}

func TestGetStatsUnknownSubject(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "rafi", 0)

	h := NewGetStatsHandler(store, catalog)
	_, err := h.Handle(context.Background(), GetStatsQuery{Username: "rafi", Subject: "Alchemy"})
	assert.True(t, shared.IsValidation(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// GET LEVELS
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLevels(t *testing.T) {
	res := NewGetLevelsHandler(levels).Handle(context.Background())

	require.Len(t, res.Levels, 12)
	assert.Equal(t, "Novice", res.Levels[0].Name)
	assert.Equal(t, 0, res.Levels[0].MinXP)
	assert.Equal(t, "HSC Elite", res.Levels[11].Name)
	assert.Equal(t, 100000, res.Levels[11].MaxXP)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET SHARE LINK
// ──────────────────────────────────────────────────────────────────────────────

func TestGetShareLink(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "rafi", 2)

	h := NewGetShareLinkHandler(store)
	res, err := h.Handle(context.Background(), GetShareLinkQuery{Username: "rafi", BaseURL: "https://hub.example.com/"})
	require.NoError(t, err)

	assert.Equal(t, "https://hub.example.com/"+sharecode.FragmentPrefix+res.Token, res.Link)

	decoded, err := sharecode.Decode(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "rafi", decoded.Username.String())
	assert.Equal(t, 20, decoded.XP)
	assert.Empty(t, decoded.Password)
	assert.Empty(t, decoded.FollowedUsers)
}

func TestGetShareLinkWithoutBaseURL(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "rafi", 0)

	res, err := NewGetShareLinkHandler(store).Handle(context.Background(), GetShareLinkQuery{Username: "rafi"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Empty(t, res.Link)
}

// ──────────────────────────────────────────────────────────────────────────────
// PEER BOARD / PEER PROFILE
// ──────────────────────────────────────────────────────────────────────────────

func follow(t *testing.T, store profile.Store, owner string, peer *profile.Profile) {
	t.Helper()

	p, err := store.Get(context.Background(), profile.NormalizeUsername(owner))
	require.NoError(t, err)
	_, err = social.Merge(p, peer.Snapshot())
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), p))
}

func TestGetPeerBoardSortsByXPDescending(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "owner", 1)

	strong := profile.New(profile.NormalizeUsername("strong"), "", now)
	strong.XP = 500
	weak := profile.New(profile.NormalizeUsername("weak"), "", now)
	weak.XP = 5
	follow(t, store, "owner", strong)
	follow(t, store, "owner", weak)

	res, err := NewGetPeerBoardHandler(store, levels).Handle(context.Background(), GetPeerBoardQuery{Username: "owner"})
	require.NoError(t, err)
	require.Len(t, res.Entries, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{res.Entries[0].Rank, res.Entries[1].Rank, res.Entries[2].Rank})
	assert.Equal(t, "strong", res.Entries[0].Username)
	assert.Equal(t, "owner", res.Entries[1].Username)
	assert.True(t, res.Entries[1].IsSelf)
	assert.Equal(t, "weak", res.Entries[2].Username)
	assert.Equal(t, "Learner", res.Entries[0].Level.Name)
}

func TestGetPeerBoardEqualXPKeepsFollowOrder(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "owner", 0)

	for _, name := range []string{"first", "second"} {
		peer := profile.New(profile.NormalizeUsername(name), "", now)
		follow(t, store, "owner", peer)
	}

	res, err := NewGetPeerBoardHandler(store, levels).Handle(context.Background(), GetPeerBoardQuery{Username: "owner"})
	require.NoError(t, err)
	require.Len(t, res.Entries, 3)

	// Все с нулём XP: владелец идёт первым, подписки в порядке добавления.
	assert.Equal(t, "owner", res.Entries[0].Username)
	assert.Equal(t, "first", res.Entries[1].Username)
	assert.Equal(t, "second", res.Entries[2].Username)
}

func TestGetPeerProfile(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "owner", 0)

	peer := seedProfile(t, store, "peer", 3)
	follow(t, store, "owner", peer)

	res, err := NewGetPeerProfileHandler(store, catalog, levels).Handle(context.Background(),
		GetPeerProfileQuery{Username: "owner", Peer: "PEER"})
	require.NoError(t, err)

	assert.Equal(t, "peer", res.Username)
	assert.Equal(t, 30, res.XP)
	assert.Equal(t, 3, res.Stats.CompletedTopics)
}

func TestGetPeerProfileNotFollowed(t *testing.T) {
	store := local.NewMemoryStore()
	seedProfile(t, store, "owner", 0)

	_, err := NewGetPeerProfileHandler(store, catalog, levels).Handle(context.Background(),
		GetPeerProfileQuery{Username: "owner", Peer: "stranger"})
	assert.True(t, shared.IsNotFound(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// EXPLAIN TOPIC
// ──────────────────────────────────────────────────────────────────────────────

type stubExplainer struct {
	text string
	err  error
}

func (s *stubExplainer) Explain(context.Context, string, string, string) (string, error) {
	return s.text, s.err
}

func TestExplainTopic(t *testing.T) {
	h := NewExplainTopicHandler(&stubExplainer{text: "Vectors have magnitude and direction."}, catalog, nil)

	res, err := h.Handle(context.Background(), ExplainTopicQuery{
		Subject: "Physics 1st", Chapter: "Ch2: Vectors", Topic: "T-01: Vector Types",
	})
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, "Vectors have magnitude and direction.", res.Explanation)
}

func TestExplainTopicModelFailureServesFallback(t *testing.T) {
	h := NewExplainTopicHandler(&stubExplainer{err: errors.New("quota exceeded")}, catalog, nil)

	res, err := h.Handle(context.Background(), ExplainTopicQuery{
		Subject: "Physics 1st", Chapter: "Ch2: Vectors", Topic: "T-01: Vector Types",
	})
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, FallbackExplanation, res.Explanation)
}

func TestExplainTopicNilExplainerServesFallback(t *testing.T) {
	h := NewExplainTopicHandler(nil, catalog, nil)

	res, err := h.Handle(context.Background(), ExplainTopicQuery{
		Subject: "Physics 1st", Chapter: "Ch2: Vectors", Topic: "T-01: Vector Types",
	})
	require.NoError(t, err)
	assert.True(t, res.Fallback)
}

func TestExplainTopicUnknownTopic(t *testing.T) {
	h := NewExplainTopicHandler(&stubExplainer{text: "x"}, catalog, nil)

	_, err := h.Handle(context.Background(), ExplainTopicQuery{
		Subject: "Physics 1st", Chapter: "Ch2: Vectors", Topic: "T-99: Made Up",
	})
	assert.True(t, shared.IsValidation(err))
}
