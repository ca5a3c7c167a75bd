package query

import (
	"context"
	"errors"

	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
	"github.com/hsc-elite/progress-hub/internal/domain/leveling"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/internal/domain/social"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET PEER PROFILE QUERY
// Детальный просмотр подписки: уровень и разбивка освоения по предметам,
// вычисленные из сохранённого снимка. Снимок может быть сколь угодно
// старым - он обновляется только повторным импортом токена.
// ══════════════════════════════════════════════════════════════════════════════

// GetPeerProfileQuery содержит параметры запроса.
type GetPeerProfileQuery struct {
	// Username - владелец списка подписок.
	Username string

	// Peer - имя подписки из списка.
	Peer string
}

// Validate проверяет корректность запроса.
func (q GetPeerProfileQuery) Validate() error {
	if q.Username == "" {
		return errors.New("username is required")
	}
	if q.Peer == "" {
		return errors.New("peer is required")
	}
	return nil
}

// PeerProfileDTO - подписка с производной статистикой.
type PeerProfileDTO struct {
	Username   string        `json:"username"`
	XP         int           `json:"xp"`
	Level      LevelDTO      `json:"level"`
	LastActive int64         `json:"last_active"`
	Stats      profile.Stats `json:"stats"`
}

// GetPeerProfileHandler обрабатывает GetPeerProfileQuery.
type GetPeerProfileHandler struct {
	store   profile.Store
	catalog *curriculum.Catalog
	levels  leveling.Table
}

// NewGetPeerProfileHandler создаёт новый GetPeerProfileHandler.
func NewGetPeerProfileHandler(store profile.Store, catalog *curriculum.Catalog, levels leveling.Table) *GetPeerProfileHandler {
	return &GetPeerProfileHandler{store: store, catalog: catalog, levels: levels}
}

// Handle выполняет запрос.
func (h *GetPeerProfileHandler) Handle(ctx context.Context, q GetPeerProfileQuery) (*PeerProfileDTO, error) {
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

	peer, ok := social.Find(owner, profile.NormalizeUsername(q.Peer))
	if !ok {
		return nil, shared.NewDomainError("social", "GetPeerProfile", shared.ErrNotFound,
			"peer is not in the followed list")
	}

	return &PeerProfileDTO{
		Username:   peer.Username.String(),
		XP:         peer.XP,
		Level:      toLevelDTO(h.levels.StatusFor(peer.XP)),
		LastActive: peer.LastActive,
		Stats:      profile.ComputeStats(peer.Progress, h.catalog),
	}, nil
}
