package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
)

func TestComputeStats_Empty(t *testing.T) {
	catalog := curriculum.DefaultCatalog()
	stats := ComputeStats(NewProgressState(), catalog)

	assert.Equal(t, catalog.TotalTopics(), stats.TotalTopics)
	assert.Equal(t, 0, stats.CompletedTopics)
	assert.Equal(t, 0.0, stats.OverallPercent)
	assert.Len(t, stats.SubjectOrder, 8)
	for _, name := range stats.SubjectOrder {
		assert.Contains(t, stats.Subjects, name)
	}
}

func TestComputeStats_CountsCompleted(t *testing.T) {
	catalog := curriculum.DefaultCatalog()
	sub := catalog.Subjects()[0]
	ch := sub.Chapters[0]

	s := NewProgressState()
	for _, topic := range ch.Topics {
		s = s.ToggleTopic(sub.Name, ch.Name, topic)
	}

	stats := ComputeStats(s, catalog)
	assert.Equal(t, len(ch.Topics), stats.CompletedTopics)
	assert.Equal(t, len(ch.Topics), stats.Subjects[sub.Name].Done)

	// Overall percent is weighted over all topics, not averaged per subject.
	expected := float64(len(ch.Topics)) / float64(catalog.TotalTopics()) * 100
	assert.InDelta(t, expected, stats.OverallPercent, 0.001)
}

func TestComputeStats_IgnoresUnknownKeys(t *testing.T) {
	catalog := curriculum.DefaultCatalog()
	s := NewProgressState()
	s.CompletedTopics["ghost-subject-ch-topic"] = true

	stats := ComputeStats(s, catalog)
	assert.Equal(t, 0, stats.CompletedTopics)
}

func TestComputeChapterStats(t *testing.T) {
	catalog := curriculum.DefaultCatalog()
	sub := catalog.Subjects()[0]
	ch := sub.Chapters[1]

	s := NewProgressState()
	s = s.ToggleTopic(sub.Name, ch.Name, ch.Topics[0])

	chapters := ComputeChapterStats(s, catalog, sub.Name)
	require.Len(t, chapters, len(sub.Chapters))
	assert.Equal(t, ch.Name, chapters[1].Name)
	assert.Equal(t, 1, chapters[1].Done)
	assert.Equal(t, len(ch.Topics), chapters[1].Total)

	assert.Nil(t, ComputeChapterStats(s, catalog, "No Such Subject"))
}
