package query

import (
	"context"

	"github.com/hsc-elite/progress-hub/internal/domain/leveling"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET LEVELS QUERY
// Возвращает всю таблицу уровней. Таблица статична; запрос нужен, чтобы
// клиент рисовал лестницу уровней, не дублируя границы полос у себя.
// ══════════════════════════════════════════════════════════════════════════════

// GetLevelsResult содержит таблицу уровней.
type GetLevelsResult struct {
	Levels []LevelDTO `json:"levels"`
}

// GetLevelsHandler обрабатывает запрос таблицы уровней.
type GetLevelsHandler struct {
	levels leveling.Table
}

// NewGetLevelsHandler создаёт новый GetLevelsHandler.
func NewGetLevelsHandler(levels leveling.Table) *GetLevelsHandler {
	return &GetLevelsHandler{levels: levels}
}

// Handle выполняет запрос.
func (h *GetLevelsHandler) Handle(_ context.Context) *GetLevelsResult {
	out := make([]LevelDTO, 0, len(h.levels))
	for _, b := range h.levels {
		out = append(out, LevelDTO{
			Level: b.Level,
			Name:  b.Name,
			Emoji: b.Emoji,
			Color: b.Color,
			MinXP: b.Min,
			MaxXP: b.Max,
		})
	}
	return &GetLevelsResult{Levels: out}
}
