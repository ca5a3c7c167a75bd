package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
)

func TestComputeXP(t *testing.T) {
	s := NewProgressState()
	assert.Equal(t, 0, ComputeXP(s))

	s = s.ToggleTopic("Physics 1st", "Ch2: Vectors", "T-01: Vector Types")
	s = s.ToggleTopic("Physics 1st", "Ch2: Vectors", "T-02: Resultant")
	s = s.ToggleTopic("Physics 1st", "Ch2: Vectors", "T-07: Dot Product")
	s = s.ToggleMilestone("Physics 1st", "Ch2: Vectors", curriculum.TheoryFamiliar)

	// 3 topics * 10 + 1 milestone * 50
	assert.Equal(t, 80, ComputeXP(s))
}

func TestComputeXP_IgnoresFalseEntries(t *testing.T) {
	s := NewProgressState()
	s.CompletedTopics["a-b-c"] = true
	s.CompletedTopics["d-e-f"] = false
	s.ChapterMilestones["a-b-theory-familiar"] = false

	assert.Equal(t, 10, ComputeXP(s))
}

func TestToggleTopic_RoundTrip(t *testing.T) {
	s := NewProgressState()

	on := s.ToggleTopic("Physics 1st", "Ch2: Vectors", "T-01: Vector Types")
	assert.True(t, on.TopicDone("Physics 1st", "Ch2: Vectors", "T-01: Vector Types"))
	assert.Equal(t, 10, ComputeXP(on))

	off := on.ToggleTopic("Physics 1st", "Ch2: Vectors", "T-01: Vector Types")
	assert.False(t, off.TopicDone("Physics 1st", "Ch2: Vectors", "T-01: Vector Types"))
	assert.Equal(t, 0, ComputeXP(off))

	// The original state is never mutated.
	assert.False(t, s.TopicDone("Physics 1st", "Ch2: Vectors", "T-01: Vector Types"))
}

func TestApplyProgress(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p := New(NormalizeUsername("Rakib"), "secret", now)
	assert.Equal(t, 0, p.XP)

	next := p.Progress.ToggleTopic("Physics 1st", "Ch2: Vectors", "T-01: Vector Types")
	next = next.ToggleMilestone("Physics 1st", "Ch2: Vectors", curriculum.PracticeHSC)

	later := now.Add(time.Hour)
	oldXP := p.ApplyProgress(next, later)

	assert.Equal(t, 0, oldXP)
	assert.Equal(t, 60, p.XP)
	assert.Equal(t, later.UnixMilli(), p.LastActive)
}

func TestApplyProgress_RecomputesNeverIncrements(t *testing.T) {
	now := time.Now()
	p := New(NormalizeUsername("x"), "pw", now)

	s := p.Progress.ToggleTopic("a", "b", "c")
	p.ApplyProgress(s, now)
	// Applying the identical state twice leaves XP unchanged.
	p.ApplyProgress(s, now)
	assert.Equal(t, 10, p.XP)
}
