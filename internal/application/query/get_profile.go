// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import (
	"context"
	"errors"

	"github.com/hsc-elite/progress-hub/internal/domain/leveling"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET PROFILE QUERY
// Возвращает активный профиль с его уровнем. То, что видит студент на
// главном экране: имя, XP, текущая полоса уровня и прогресс до следующей.
// ══════════════════════════════════════════════════════════════════════════════

// GetProfileQuery содержит параметры запроса профиля.
type GetProfileQuery struct {
	// Username - нормализуется перед использованием.
	Username string
}

// Validate проверяет корректность запроса.
func (q GetProfileQuery) Validate() error {
	if q.Username == "" {
		return errors.New("username is required")
	}
	return nil
}

// LevelDTO - снимок полосы уровня для отображения.
type LevelDTO struct {
	// Level - номер полосы (1..12).
	Level int `json:"level"`

	// Name - название полосы ("Novice", "Scholar", ...).
	Name string `json:"name"`

	// Emoji и Color - оформление полосы.
	Emoji string `json:"emoji"`
	Color string `json:"color"`

	// MinXP и MaxXP - границы полосы включительно.
	MinXP int `json:"min_xp"`
	MaxXP int `json:"max_xp"`

	// ProgressToNext - процент до следующей полосы (0-100).
	ProgressToNext float64 `json:"progress_to_next"`
}

// ProfileDTO - профиль для отображения. Пароль никогда не попадает сюда.
type ProfileDTO struct {
	Username      string   `json:"username"`
	XP            int      `json:"xp"`
	Level         LevelDTO `json:"level"`
	LastActive    int64    `json:"last_active"`
	FollowedCount int      `json:"followed_count"`
}

// GetProfileHandler обрабатывает GetProfileQuery.
type GetProfileHandler struct {
	store  profile.Store
	levels leveling.Table
}

// NewGetProfileHandler создаёт новый GetProfileHandler.
func NewGetProfileHandler(store profile.Store, levels leveling.Table) *GetProfileHandler {
	return &GetProfileHandler{store: store, levels: levels}
}

// Handle выполняет запрос.
func (h *GetProfileHandler) Handle(ctx context.Context, q GetProfileQuery) (*ProfileDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	p, err := h.store.Get(ctx, profile.NormalizeUsername(q.Username))
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.ErrProfileNotFound
		}
		return nil, err
	}

	dto := toProfileDTO(p, h.levels)
	return &dto, nil
}

func toProfileDTO(p *profile.Profile, levels leveling.Table) ProfileDTO {
	return ProfileDTO{
		Username:      p.Username.String(),
		XP:            p.XP,
		Level:         toLevelDTO(levels.StatusFor(p.XP)),
		LastActive:    p.LastActive,
		FollowedCount: len(p.FollowedUsers),
	}
}

func toLevelDTO(s leveling.Status) LevelDTO {
	return LevelDTO{
		Level:          s.Current.Level,
		Name:           s.Current.Name,
		Emoji:          s.Current.Emoji,
		Color:          s.Current.Color,
		MinXP:          s.Current.Min,
		MaxXP:          s.Current.Max,
		ProgressToNext: s.ProgressToNext,
	}
}
