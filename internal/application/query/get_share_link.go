package query

import (
	"context"
	"errors"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/sharecode"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET SHARE LINK QUERY
// Выдаёт токен и готовую ссылку для шаринга профиля. Токен - это снимок
// без пароля и без списка подписок: получатель видит прогресс, но не
// секреты и не чужой граф.
// ══════════════════════════════════════════════════════════════════════════════

// GetShareLinkQuery содержит параметры запроса ссылки.
type GetShareLinkQuery struct {
	// Username - владелец профиля.
	Username string

	// BaseURL - база для ссылки, например "https://hub.example.com/".
	BaseURL string
}

// Validate проверяет корректность запроса.
func (q GetShareLinkQuery) Validate() error {
	if q.Username == "" {
		return errors.New("username is required")
	}
	return nil
}

// GetShareLinkResult содержит токен и ссылку.
type GetShareLinkResult struct {
	Token string `json:"token"`
	Link  string `json:"link"`
}

// GetShareLinkHandler обрабатывает GetShareLinkQuery.
type GetShareLinkHandler struct {
	store profile.Store
}

// NewGetShareLinkHandler создаёт новый GetShareLinkHandler.
func NewGetShareLinkHandler(store profile.Store) *GetShareLinkHandler {
	return &GetShareLinkHandler{store: store}
}

// Handle выполняет запрос.
func (h *GetShareLinkHandler) Handle(ctx context.Context, q GetShareLinkQuery) (*GetShareLinkResult, error) {
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

	token, err := sharecode.Encode(p)
	if err != nil {
		return nil, err
	}

	res := &GetShareLinkResult{Token: token}
	if q.BaseURL != "" {
		res.Link = q.BaseURL + sharecode.FragmentPrefix + token
	}
	return res, nil
}
