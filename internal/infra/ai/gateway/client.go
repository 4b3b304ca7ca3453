package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	domai "github.com/osteovision/osteovision/internal/domain/ai"
	"github.com/osteovision/osteovision/internal/infra/ai/prompt"
)

const maxTokens = 4096

// temperature favors determinism over creativity; the reply must be
// parseable structured data.
const temperature = 0.3

// Client talks to an OpenAI-compatible chat-completion gateway. Each call is
// independent; the credential is resolved per request so a missing key fails
// that request only, never the process.
type Client struct {
	apiKey  func() string
	baseURL string
	Model   string
}

// New builds a gateway client. baseURL points at the OpenAI-compatible
// endpoint root (e.g. "https://ai.gateway.lovable.dev/v1"); an empty baseURL
// uses the upstream default.
func New(apiKey func() string, baseURL, model string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, Model: model}
}

// Analyze sends the scan as a multimodal user message and returns the
// assistant's raw text reply. Upstream rate-limit and quota statuses map to
// sentinel errors so the HTTP layer can pass them through distinctly.
func (c *Client) Analyze(ctx context.Context, imageBase64, scanType string) (string, error) {
	key := c.apiKey()
	if key == "" {
		return "", domai.ErrNotConfigured
	}

	cfg := openai.DefaultConfig(key)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	api := openai.NewClientWithConfig(cfg)

	model := c.Model
	if model == "" {
		model = "google/gemini-2.5-pro"
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt.GetUserPrompt(scanType)},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + imageBase64,
						},
					},
				},
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	resp, err := api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domai.ErrEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}

func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domai.ErrTimeout
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return mapStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return mapStatus(reqErr.HTTPStatusCode, err)
	}
	return fmt.Errorf("ai gateway error: %w", err)
}

func mapStatus(status int, err error) error {
	switch status {
	case http.StatusTooManyRequests:
		return domai.ErrRateLimited
	case http.StatusPaymentRequired:
		return domai.ErrQuotaExhausted
	}
	return fmt.Errorf("ai gateway error: %d: %w", status, err)
}
