// Package tutor implements the AKI explanation client. It talks to a
// Gemini-style generateContent endpoint and turns a curriculum topic into a
// Markdown explanation suitable for a text-only study device, which is why
// the prompt and the sanitizer both fight LaTeX dollar delimiters.
package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hsc-elite/progress-hub/internal/domain/shared"
	"github.com/hsc-elite/progress-hub/pkg/circuitbreaker"
	"github.com/hsc-elite/progress-hub/pkg/logger"
	"github.com/hsc-elite/progress-hub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config contains configuration for the tutor client.
type Config struct {
	// BaseURL is the generative API base URL.
	BaseURL string

	// APIKey authenticates the request. An empty key disables the client.
	APIKey string

	// Model is the model identifier used in the request path.
	Model string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// Temperature and TopP steer generation. Low temperature keeps the
	// explanations factual.
	Temperature float64
	TopP        float64

	// Retry controls transient-failure retries.
	Retry retry.Config

	// Breaker controls fault tolerance toward the API.
	Breaker circuitbreaker.Config

	// Logger for structured logging.
	Logger *logger.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		BaseURL:     "https://generativelanguage.googleapis.com",
		APIKey:      apiKey,
		Model:       "gemini-3-flash-preview",
		Timeout:     30 * time.Second,
		Temperature: 0.2,
		TopP:        0.8,
		Retry:       retry.DefaultConfig(),
		Breaker:     circuitbreaker.DefaultConfig("tutor"),
	}
}

const promptTemplate = `You are AKI, an expert tutor for the HSC (Higher Secondary Certificate) exams.
The student is asking about:
Subject: %s
Chapter: %s
Topic: %s

Please provide:
1. A clear, concise explanation of the topic.
2. Key formulas or definitions.

CRITICAL INSTRUCTIONS FOR MATHEMATICS:
- USE ONLY Unicode symbols (e.g., Δ, λ, ε₀, ħ, →, ∞, ±, √, ∑) and proper superscripts/subscripts (x², H₂O).
- ABSOLUTELY FORBIDDEN: Do not use dollar signs ($) or double dollar signs ($$) as delimiters for math.
- The device cannot render LaTeX symbols inside dollar signs. If you use them, the answer will be broken.
- Write formulas in plain text or using Markdown bold/italics.

Structure:
- Use standard Markdown headings (###).
- Include "Common Mistake" and "Practice Tip" sections.
- Use professional, academic, yet encouraging language.`

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Client is the tutor API client.
type Client struct {
	config     Config
	httpClient *http.Client
	breaker    *circuitbreaker.Breaker
	log        *logger.Logger
}

// NewClient creates a new tutor client.
func NewClient(config Config) *Client {
	if config.Logger == nil {
		config.Logger = logger.Default()
	}
	if config.Model == "" {
		config.Model = "gemini-3-flash-preview"
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		breaker:    circuitbreaker.New(config.Breaker),
		log:        config.Logger,
	}
}

// Enabled reports whether the client has an API key configured.
func (c *Client) Enabled() bool { return c.config.APIKey != "" }

// Explain asks the model for an explanation of the given topic and returns
// sanitized Markdown.
func (c *Client) Explain(ctx context.Context, subject, chapter, topic string) (string, error) {
	if !c.Enabled() {
		return "", shared.NewDomainError("tutor", "Explain", shared.ErrExternalService,
			"tutor API key is not configured")
	}

	prompt := fmt.Sprintf(promptTemplate, subject, chapter, topic)

	var text string
	err := retry.Do(ctx, c.config.Retry, func(ctx context.Context) error {
		if cbErr := c.breaker.Allow(); cbErr != nil {
			return retry.Permanent(cbErr)
		}

		out, genErr := c.generate(ctx, prompt)
		if genErr != nil {
			c.breaker.RecordFailure()
			return genErr
		}

		c.breaker.RecordSuccess()
		text = out
		return nil
	})
	if err != nil {
		c.log.Warn("tutor request failed",
			logger.String("subject", subject),
			logger.String("topic", topic),
			logger.Err(err),
		)
		return "", shared.WrapError("tutor", "Explain", shared.ErrExternalService, "explanation request failed", err)
	}

	return SanitizeMath(text), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []contentDTO{{Parts: []partDTO{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature: c.config.Temperature,
			TopP:        c.config.TopP,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", retry.Permanent(fmt.Errorf("encode request: %w", err))
	}

	fullURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.BaseURL, c.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(payload))
	if err != nil {
		return "", retry.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("tutor API returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
		// Client errors will not heal on retry; let server errors retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", retry.Permanent(err)
		}
		return "", err
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("tutor API error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}

	text := parsed.text()
	if text == "" {
		return "", fmt.Errorf("tutor API returned an empty candidate")
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
