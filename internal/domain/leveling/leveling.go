// Package leveling отображает очки опыта (XP) в уровень студента по
// фиксированной возрастающей таблице диапазонов. Таблица покрывает [0, ∞):
// XP выше потолка последнего диапазона остаётся на максимальном уровне.
package leveling

import (
	"errors"
	"fmt"
	"math"
)

// Band is a single level's XP range. Min and Max are inclusive.
type Band struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// Contains reports whether xp falls inside the band's inclusive range.
func (b Band) Contains(xp int) bool {
	return xp >= b.Min && xp <= b.Max
}

// Table is an ordered list of bands with ascending, gap-free ranges.
type Table []Band

var (
	// ErrEmptyTable indicates a table with no bands.
	ErrEmptyTable = errors.New("leveling: table has no bands")
)

// DefaultTable returns the built-in twelve-level ladder.
func DefaultTable() Table {
	return Table{
		{Level: 1, Name: "Novice", Min: 0, Max: 300, Emoji: "🌱", Color: "slate"},
		{Level: 2, Name: "Learner", Min: 301, Max: 800, Emoji: "📚", Color: "blue"},
		{Level: 3, Name: "Student", Min: 801, Max: 1500, Emoji: "✏️", Color: "teal"},
		{Level: 4, Name: "Scholar", Min: 1501, Max: 2500, Emoji: "📖", Color: "indigo"},
		{Level: 5, Name: "Expert", Min: 2501, Max: 4000, Emoji: "🎓", Color: "orange"},
		{Level: 6, Name: "Master", Min: 4001, Max: 6000, Emoji: "👨‍🎓", Color: "red"},
		{Level: 7, Name: "Virtuoso", Min: 6001, Max: 8500, Emoji: "🧠", Color: "purple"},
		{Level: 8, Name: "Prodigy", Min: 8501, Max: 11500, Emoji: "⭐", Color: "pink"},
		{Level: 9, Name: "Champion", Min: 11501, Max: 15000, Emoji: "🏆", Color: "yellow"},
		{Level: 10, Name: "Legend", Min: 15001, Max: 20000, Emoji: "💎", Color: "cyan"},
		{Level: 11, Name: "Grandmaster", Min: 20001, Max: 30000, Emoji: "👑", Color: "gold"},
		{Level: 12, Name: "HSC Elite", Min: 30001, Max: 100000, Emoji: "🔥", Color: "amber"},
	}
}

// Validate checks that the table is non-empty, strictly ascending and
// covers its range without gaps or overlaps.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	for i, b := range t {
		if b.Min > b.Max {
			return fmt.Errorf("leveling: band %d has min %d > max %d", b.Level, b.Min, b.Max)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if b.Level != prev.Level+1 {
			return fmt.Errorf("leveling: band levels must be consecutive, got %d after %d", b.Level, prev.Level)
		}
		if b.Min != prev.Max+1 {
			return fmt.Errorf("leveling: band %d starts at %d, expected %d", b.Level, b.Min, prev.Max+1)
		}
	}
	return nil
}

// Current returns the band containing xp. XP above the last band's ceiling
// resolves to the top band (max level, not an error); negative xp clamps to
// the first band.
func (t Table) Current(xp int) Band {
	if len(t) == 0 {
		return Band{}
	}
	if xp < t[0].Min {
		return t[0]
	}
	for _, b := range t {
		if b.Contains(xp) {
			return b
		}
	}
	return t[len(t)-1]
}

// Next returns the band one level above cur, or nil if cur is the last band.
func (t Table) Next(cur Band) *Band {
	for i := range t {
		if t[i].Level == cur.Level+1 {
			b := t[i]
			return &b
		}
	}
	return nil
}

// ProgressToNext returns how far xp has advanced from cur towards next as a
// percentage in [0, 100]. A nil next means the top band has been reached and
// the progress is complete.
func ProgressToNext(xp int, cur Band, next *Band) float64 {
	if next == nil {
		return 100
	}
	span := next.Min - cur.Min
	if span <= 0 {
		return 100
	}
	p := float64(xp-cur.Min) / float64(span) * 100
	return math.Min(100, math.Max(0, p))
}

// Status bundles the derived leveling view for an XP value.
type Status struct {
	XP             int     `json:"xp"`
	Current        Band    `json:"current"`
	Next           *Band   `json:"next,omitempty"`
	ProgressToNext float64 `json:"progress_to_next"`
}

// StatusFor computes the full leveling status for an XP value.
func (t Table) StatusFor(xp int) Status {
	cur := t.Current(xp)
	next := t.Next(cur)
	return Status{
		XP:             xp,
		Current:        cur,
		Next:           next,
		ProgressToNext: ProgressToNext(xp, cur, next),
	}
}
