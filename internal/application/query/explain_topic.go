package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// EXPLAIN TOPIC QUERY
// Запрашивает у AKI объяснение темы. Любой сбой модели схлопывается в
// дежурное сообщение: объяснение - это подсказка, а не часть состояния,
// поэтому ошибка здесь никогда не ломает остальное приложение.
// ══════════════════════════════════════════════════════════════════════════════

// FallbackExplanation возвращается при любом сбое модели.
const FallbackExplanation = "Sorry, AKI couldn't get an explanation right now. Please check your internet connection and try again."

// Explainer - источник объяснений.
type Explainer interface {
	Explain(ctx context.Context, subject, chapter, topic string) (string, error)
}

// ExplainTopicQuery содержит параметры запроса объяснения.
type ExplainTopicQuery struct {
	Subject string
	Chapter string
	Topic   string
}

// Validate проверяет корректность запроса.
func (q ExplainTopicQuery) Validate() error {
	if q.Subject == "" || q.Chapter == "" || q.Topic == "" {
		return errors.New("subject, chapter and topic are required")
	}
	return nil
}

// ExplainTopicResult содержит объяснение.
type ExplainTopicResult struct {
	// Explanation - Markdown-текст объяснения или дежурное сообщение.
	Explanation string `json:"explanation"`

	// Fallback - true, когда модель недоступна и вернулась заглушка.
	Fallback bool `json:"fallback"`
}

// ExplainTopicHandler обрабатывает ExplainTopicQuery.
type ExplainTopicHandler struct {
	explainer Explainer
	catalog   *curriculum.Catalog
	log       *logger.Logger
}

// NewExplainTopicHandler создаёт новый ExplainTopicHandler. explainer может
// быть nil, если ключ API не настроен.
func NewExplainTopicHandler(explainer Explainer, catalog *curriculum.Catalog, log *logger.Logger) *ExplainTopicHandler {
	if log == nil {
		log = logger.Default()
	}
	return &ExplainTopicHandler{explainer: explainer, catalog: catalog, log: log}
}

// Handle выполняет запрос.
func (h *ExplainTopicHandler) Handle(ctx context.Context, q ExplainTopicQuery) (*ExplainTopicResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if !h.catalog.HasTopic(q.Subject, q.Chapter, q.Topic) {
		return nil, shared.NewDomainError("tutor", "ExplainTopic", shared.ErrInvalidInput,
			fmt.Sprintf("unknown topic %q in %s/%s", q.Topic, q.Subject, q.Chapter))
	}

	if h.explainer == nil {
		return &ExplainTopicResult{Explanation: FallbackExplanation, Fallback: true}, nil
	}

	text, err := h.explainer.Explain(ctx, q.Subject, q.Chapter, q.Topic)
	if err != nil {
		h.log.Warn("explanation failed, serving fallback",
			logger.String("subject", q.Subject),
			logger.String("topic", q.Topic),
			logger.Err(err),
		)
		return &ExplainTopicResult{Explanation: FallbackExplanation, Fallback: true}, nil
	}

	return &ExplainTopicResult{Explanation: text}, nil
}
