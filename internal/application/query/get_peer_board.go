package query

import (
	"context"
	"errors"
	"sort"

	"github.com/hsc-elite/progress-hub/internal/domain/leveling"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET PEER BOARD QUERY
// Локальный лидерборд: сам владелец плюс снимки всех, на кого он подписан,
// отсортированные по XP по убыванию. Сортировка только на отображении -
// порядок хранения (порядок первых подписок) не трогается.
// ══════════════════════════════════════════════════════════════════════════════

// GetPeerBoardQuery содержит параметры запроса доски.
type GetPeerBoardQuery struct {
	Username string
}

// Validate проверяет корректность запроса.
func (q GetPeerBoardQuery) Validate() error {
	if q.Username == "" {
		return errors.New("username is required")
	}
	return nil
}

// BoardEntryDTO - строка доски.
type BoardEntryDTO struct {
	// Rank - позиция на доске (с 1).
	Rank int `json:"rank"`

	// Username - имя участника.
	Username string `json:"username"`

	// XP - очки опыта из снимка.
	XP int `json:"xp"`

	// Level - полоса уровня для этого XP.
	Level LevelDTO `json:"level"`

	// LastActive - из снимка; для подписок это момент экспорта токена.
	LastActive int64 `json:"last_active"`

	// IsSelf - true для строки самого владельца.
	IsSelf bool `json:"is_self"`
}

// GetPeerBoardResult содержит доску.
type GetPeerBoardResult struct {
	Entries []BoardEntryDTO `json:"entries"`
}

// GetPeerBoardHandler обрабатывает GetPeerBoardQuery.
type GetPeerBoardHandler struct {
	store  profile.Store
	levels leveling.Table
}

// NewGetPeerBoardHandler создаёт новый GetPeerBoardHandler.
func NewGetPeerBoardHandler(store profile.Store, levels leveling.Table) *GetPeerBoardHandler {
	return &GetPeerBoardHandler{store: store, levels: levels}
}

// Handle выполняет запрос.
func (h *GetPeerBoardHandler) Handle(ctx context.Context, q GetPeerBoardQuery) (*GetPeerBoardResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	owner, err := h.store.Get(ctx, profile.NormalizeUsername(q.Username))
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.ErrProfileNotFound
		}
		return nil, err
	}

	entries := make([]BoardEntryDTO, 0, len(owner.FollowedUsers)+1)
	entries = append(entries, h.entry(owner, true))
	for i := range owner.FollowedUsers {
		entries = append(entries, h.entry(&owner.FollowedUsers[i], false))
	}

	// Стабильная сортировка: при равном XP сохраняется порядок подписок.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return &GetPeerBoardResult{Entries: entries}, nil
}

func (h *GetPeerBoardHandler) entry(p *profile.Profile, self bool) BoardEntryDTO {
	return BoardEntryDTO{
		Username:   p.Username.String(),
		XP:         p.XP,
		Level:      toLevelDTO(h.levels.StatusFor(p.XP)),
		LastActive: p.LastActive,
		IsSelf:     self,
	}
}
