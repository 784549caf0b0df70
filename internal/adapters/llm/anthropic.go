// Package llm is the boundary to the language-model provider. It issues
// single-turn message requests and hands back raw completion text; prompt
// construction and response parsing live with the callers.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/boardroom-ai/boardroom/pkg/logger"
	"github.com/boardroom-ai/boardroom/pkg/metrics"
)

// Default request parameters.
const (
	defaultModel     = "claude-sonnet-4-5-20250929"
	defaultMaxTokens = 2048
)

// Client is the completion surface the rest of the service depends on.
type Client interface {
	// Complete sends a system instruction plus one user message and
	// returns the first completion's text verbatim. One round-trip per
	// call; no retries.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Gateway implements Client against the Anthropic Messages API.
type Gateway struct {
	client    anthropic.Client
	model     string
	maxTokens int
	baseURL   string
	log       logger.Logger
}

// New creates a Gateway. The API key must be supplied explicitly; the
// process owner decides where it comes from (env at startup).
func New(apiKey string, opts ...Option) (*Gateway, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingKey
	}

	g := &Gateway{
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(g)
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if g.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(g.baseURL))
	}
	g.client = anthropic.NewClient(reqOpts...)

	if g.log == nil {
		g.log = logger.Get().Named("llm")
	}
	return g, nil
}

// Complete implements Client.
func (g *Gateway) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	start := time.Now()

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	})
	if err != nil {
		metrics.RecordModelCallError()
		g.logCallError(ctx, err)
		return "", fmt.Errorf("%w: %v", ErrModelCall, err)
	}

	// Concatenate text blocks; tool use is never requested here so the
	// response is normally a single text block.
	var parts []string
	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			parts = append(parts, resp.Content[i].Text)
		}
	}
	text := strings.Join(parts, "")
	if text == "" {
		metrics.RecordModelCallError()
		return "", fmt.Errorf("%w: %w", ErrModelCall, ErrNoContent)
	}

	metrics.RecordModelCall(g.model, float64(time.Since(start).Milliseconds()))
	metrics.RecordModelTokens(int(resp.Usage.InputTokens), int(resp.Usage.OutputTokens))
	return text, nil
}

// logCallError logs provider-supplied detail when the SDK surfaces a typed
// API error, falling back to the raw error string.
func (g *Gateway) logCallError(ctx context.Context, err error) {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		g.log.Error(ctx, "provider rejected completion request",
			logger.Int("status", apierr.StatusCode),
			logger.String("detail", apierr.Error()),
		)
		return
	}
	g.log.Error(ctx, "completion request failed", logger.Error(err))
}

// Model returns the configured model identifier.
func (g *Gateway) Model() string { return g.model }
