package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET STATS QUERY
// Возвращает статистику освоения: по предметам и общую, опционально с
// разбивкой по главам одного предмета. Всё вычисляется на лету из текущего
// состояния прогресса, ничего не хранится.
// ══════════════════════════════════════════════════════════════════════════════

// GetStatsQuery содержит параметры запроса статистики.
type GetStatsQuery struct {
	// Username - владелец прогресса.
	Username string

	// Subject - если задан, в ответ добавляется разбивка по главам.
	Subject string
}

// Validate проверяет корректность запроса.
func (q GetStatsQuery) Validate() error {
	if q.Username == "" {
		return errors.New("username is required")
	}
	return nil
}

// GetStatsResult содержит результат запроса статистики.
type GetStatsResult struct {
	// Stats - сводка по всем предметам.
	Stats profile.Stats `json:"stats"`

	// Chapters - разбивка по главам выбранного предмета (если запрошена).
	Chapters []profile.ChapterStats `json:"chapters,omitempty"`
}

// GetStatsHandler обрабатывает GetStatsQuery.
type GetStatsHandler struct {
	store   profile.Store
	catalog *curriculum.Catalog
}

// NewGetStatsHandler создаёт новый GetStatsHandler.
func NewGetStatsHandler(store profile.Store, catalog *curriculum.Catalog) *GetStatsHandler {
	return &GetStatsHandler{store: store, catalog: catalog}
}

// Handle выполняет запрос.
func (h *GetStatsHandler) Handle(ctx context.Context, q GetStatsQuery) (*GetStatsResult, error) {
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

	res := &GetStatsResult{Stats: profile.ComputeStats(p.Progress, h.catalog)}

	if q.Subject != "" {
		if _, ok := h.catalog.Subject(q.Subject); !ok {
			return nil, shared.NewDomainError("progress", "GetStats", shared.ErrInvalidInput,
				fmt.Sprintf("unknown subject %q", q.Subject))
		}
		res.Chapters = profile.ComputeChapterStats(p.Progress, h.catalog, q.Subject)
	}

	return res, nil
}
