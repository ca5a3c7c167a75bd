// Package profile содержит доменную модель профиля студента: учётные данные,
// прогресс по темам и главам, производный XP и список отслеживаемых профилей.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package profile

import (
	"strings"
	"time"

	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// Username - нормализованный идентификатор студента: нижний регистр, без
// пробелов по краям. Это первичный ключ везде: локальное хранилище,
// удалённое зеркало, указатель сессии, слияние подписок.
type Username string

// NormalizeUsername lowercases and trims a raw username.
func NormalizeUsername(raw string) Username {
	return Username(strings.ToLower(strings.TrimSpace(raw)))
}

// IsValid reports whether the username is non-empty after normalization.
func (u Username) IsValid() bool {
	return len(u) > 0
}

// String returns the string representation.
func (u Username) String() string {
	return string(u)
}

// ProgressState holds the two independent boolean maps of the learner's
// progress. Absence of a key is equivalent to false; toggling may leave
// explicit false entries behind, so all counting normalizes on read.
//
// JSON field names match the share-token wire format.
type ProgressState struct {
	// CompletedTopics: key subject-chapter-topic → topic marked mastered.
	CompletedTopics map[string]bool `json:"completedTopics"`

	// ChapterMilestones: key subject-chapter-milestone → one of the six
	// fixed chapter preparation milestones marked complete.
	ChapterMilestones map[string]bool `json:"chapterCheckboxes"`
}

// NewProgressState returns an empty progress state with allocated maps.
func NewProgressState() ProgressState {
	return ProgressState{
		CompletedTopics:   make(map[string]bool),
		ChapterMilestones: make(map[string]bool),
	}
}

// Clone returns a deep copy of the state. Nil maps are materialized as empty
// so callers can mutate the copy safely.
func (s ProgressState) Clone() ProgressState {
	out := ProgressState{
		CompletedTopics:   make(map[string]bool, len(s.CompletedTopics)),
		ChapterMilestones: make(map[string]bool, len(s.ChapterMilestones)),
	}
	for k, v := range s.CompletedTopics {
		out.CompletedTopics[k] = v
	}
	for k, v := range s.ChapterMilestones {
		out.ChapterMilestones[k] = v
	}
	return out
}

// Normalize materializes nil maps as empty ones in place.
func (s *ProgressState) Normalize() {
	if s.CompletedTopics == nil {
		s.CompletedTopics = make(map[string]bool)
	}
	if s.ChapterMilestones == nil {
		s.ChapterMilestones = make(map[string]bool)
	}
}

// Profile is the root entity: one student's identity, progress and the
// point-in-time snapshots of peers they follow.
type Profile struct {
	// Username - первичный ключ, всегда нормализован.
	Username Username `json:"username"`

	// Password - общий секрет в открытом виде, используется только для
	// локального сравнения при входе. Никогда не попадает в share-токены.
	Password string `json:"password,omitempty"`

	// XP - производное неотрицательное значение; всегда пересчитывается из
	// прогресса, никогда не инкрементируется.
	XP int `json:"xp"`

	// Progress - собственное состояние прогресса.
	Progress ProgressState `json:"progress"`

	// LastActive - метка времени последней мутации прогресса, миллисекунды
	// эпохи (формат исходного хранилища).
	LastActive int64 `json:"lastActive"`

	// FollowedUsers - упорядоченный список снимков чужих профилей. Это не
	// живые ссылки: каждый снимок обновляется только явным повторным
	// импортом свежего токена.
	FollowedUsers []Profile `json:"followedUsers,omitempty"`
}

// New creates a fresh profile at signup: zero XP, empty progress, no peers.
func New(username Username, password string, now time.Time) *Profile {
	return &Profile{
		Username:   username,
		Password:   password,
		XP:         0,
		Progress:   NewProgressState(),
		LastActive: now.UnixMilli(),
	}
}

// ValidateCredentials checks raw signup/login input before normalization.
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return shared.ErrMissingCredentials
	}
	return nil
}

// Authenticate compares the stored plaintext password with the supplied one.
func (p *Profile) Authenticate(password string) error {
	if p.Password != password {
		return shared.ErrInvalidCredentials
	}
	return nil
}

// Clone returns a deep copy of the profile, including followed snapshots.
func (p *Profile) Clone() *Profile {
	out := *p
	out.Progress = p.Progress.Clone()
	if p.FollowedUsers != nil {
		out.FollowedUsers = make([]Profile, len(p.FollowedUsers))
		for i := range p.FollowedUsers {
			out.FollowedUsers[i] = *p.FollowedUsers[i].Clone()
		}
	}
	return &out
}

// Snapshot returns the shareable view of the profile: credentials and the
// transitive follow graph are stripped, so tokens never leak passwords and
// snapshots never nest.
func (p *Profile) Snapshot() *Profile {
	out := &Profile{
		Username:   p.Username,
		XP:         p.XP,
		Progress:   p.Progress.Clone(),
		LastActive: p.LastActive,
	}
	return out
}

// Sanitize normalizes a profile that crossed a trust boundary (decoded token
// or remote mirror row): username renormalized, nil maps materialized,
// negative XP clamped, nested snapshots cleaned shallowly.
func (p *Profile) Sanitize() {
	p.Username = NormalizeUsername(string(p.Username))
	p.Progress.Normalize()
	if p.XP < 0 {
		p.XP = 0
	}
	for i := range p.FollowedUsers {
		f := &p.FollowedUsers[i]
		f.Username = NormalizeUsername(string(f.Username))
		f.Progress.Normalize()
		if f.XP < 0 {
			f.XP = 0
		}
		f.Password = ""
		f.FollowedUsers = nil
	}
}

// Touch updates the last-activity timestamp.
func (p *Profile) Touch(now time.Time) {
	p.LastActive = now.UnixMilli()
}
