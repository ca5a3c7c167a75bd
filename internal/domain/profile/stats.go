package profile

import (
	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
)

// SubjectStats is the per-subject mastery breakdown.
type SubjectStats struct {
	Done    int     `json:"done"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// ChapterStats is the per-chapter completion breakdown within a subject.
type ChapterStats struct {
	Name    string  `json:"name"`
	Done    int     `json:"done"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// Stats is the full derived statistics view over a progress state.
type Stats struct {
	// Subjects keys every subject in the catalog, in catalog order via
	// SubjectOrder.
	Subjects     map[string]SubjectStats `json:"subjects"`
	SubjectOrder []string                `json:"subject_order"`

	// TotalTopics and CompletedTopics are counted across the whole catalog.
	TotalTopics     int `json:"total_topics"`
	CompletedTopics int `json:"completed_topics"`

	// OverallPercent is computed over all topics, not as an average of
	// subject percentages, so small subjects carry proportional weight.
	OverallPercent float64 `json:"overall_percent"`
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

// ComputeStats derives per-subject and overall mastery figures for a progress
// state against the static catalog. It is a total function: a nil or partial
// state counts as nothing done.
func ComputeStats(s ProgressState, catalog *curriculum.Catalog) Stats {
	stats := Stats{
		Subjects:     make(map[string]SubjectStats, len(catalog.Subjects())),
		SubjectOrder: make([]string, 0, len(catalog.Subjects())),
	}

	for _, sub := range catalog.Subjects() {
		total := 0
		done := 0
		for _, ch := range sub.Chapters {
			total += len(ch.Topics)
			for _, t := range ch.Topics {
				if s.CompletedTopics[curriculum.TopicKey(sub.Name, ch.Name, t)] {
					done++
				}
			}
		}
		stats.Subjects[sub.Name] = SubjectStats{
			Done:    done,
			Total:   total,
			Percent: percent(done, total),
		}
		stats.SubjectOrder = append(stats.SubjectOrder, sub.Name)
		stats.TotalTopics += total
		stats.CompletedTopics += done
	}

	stats.OverallPercent = percent(stats.CompletedTopics, stats.TotalTopics)
	return stats
}

// ComputeChapterStats derives the per-chapter completion breakdown for one
// subject. Unknown subjects yield an empty slice.
func ComputeChapterStats(s ProgressState, catalog *curriculum.Catalog, subject string) []ChapterStats {
	sub, ok := catalog.Subject(subject)
	if !ok {
		return nil
	}
	out := make([]ChapterStats, 0, len(sub.Chapters))
	for _, ch := range sub.Chapters {
		done := 0
		for _, t := range ch.Topics {
			if s.CompletedTopics[curriculum.TopicKey(sub.Name, ch.Name, t)] {
				done++
			}
		}
		out = append(out, ChapterStats{
			Name:    ch.Name,
			Done:    done,
			Total:   len(ch.Topics),
			Percent: percent(done, len(ch.Topics)),
		})
	}
	return out
}
