package profile

import (
	"time"

	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
)

// XP weights: a mastered topic is worth 10 XP, a completed chapter
// preparation milestone 50 XP.
const (
	XPPerTopic     = 10
	XPPerMilestone = 50
)

// ComputeXP derives the XP value from a progress state. XP is a pure
// function of the two maps and is recomputed, never incremented, so it stays
// consistent when entries are toggled back off. False-valued and absent
// entries count identically.
func ComputeXP(s ProgressState) int {
	topics := 0
	for _, done := range s.CompletedTopics {
		if done {
			topics++
		}
	}
	milestones := 0
	for _, done := range s.ChapterMilestones {
		if done {
			milestones++
		}
	}
	return topics*XPPerTopic + milestones*XPPerMilestone
}

// ToggleTopic flips the completion flag for one topic and returns the new
// state. Repeated toggling is a pure flip with no constraints.
func (s ProgressState) ToggleTopic(subject, chapter, topic string) ProgressState {
	out := s.Clone()
	key := curriculum.TopicKey(subject, chapter, topic)
	out.CompletedTopics[key] = !out.CompletedTopics[key]
	return out
}

// ToggleMilestone flips one of the six chapter preparation milestones and
// returns the new state.
func (s ProgressState) ToggleMilestone(subject, chapter string, milestone curriculum.MilestoneType) ProgressState {
	out := s.Clone()
	key := curriculum.MilestoneKey(subject, chapter, milestone)
	out.ChapterMilestones[key] = !out.ChapterMilestones[key]
	return out
}

// TopicDone reports whether a topic is currently marked mastered.
func (s ProgressState) TopicDone(subject, chapter, topic string) bool {
	return s.CompletedTopics[curriculum.TopicKey(subject, chapter, topic)]
}

// MilestoneDone reports whether a chapter milestone is currently complete.
func (s ProgressState) MilestoneDone(subject, chapter string, milestone curriculum.MilestoneType) bool {
	return s.ChapterMilestones[curriculum.MilestoneKey(subject, chapter, milestone)]
}

// ApplyProgress replaces the profile's progress with a new state, recomputes
// XP and bumps the activity timestamp. It returns the previous XP so callers
// can detect level transitions.
func (p *Profile) ApplyProgress(s ProgressState, now time.Time) (oldXP int) {
	oldXP = p.XP
	p.Progress = s.Clone()
	p.XP = ComputeXP(p.Progress)
	p.Touch(now)
	return oldXP
}
