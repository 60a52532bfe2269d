package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// AdvisorConfig holds configuration for the generative advisor client.
type AdvisorConfig struct {
	// APIKey authenticates against the chat-completions API. Empty disables
	// the client; callers fall back to the deterministic summary.
	APIKey string
	// URL is the chat-completions endpoint.
	URL string
	// Model is the model name sent with each request.
	Model string
	// MaxRetries caps the retry loop on 429/5xx/network failures. Values
	// below zero mean no retries.
	MaxRetries int
	// Timeout is the per-attempt HTTP timeout.
	Timeout time.Duration
}

// DefaultAdvisorConfig returns sensible defaults.
func DefaultAdvisorConfig() AdvisorConfig {
	return AdvisorConfig{
		URL:        "https://api.openai.com/v1/chat/completions",
		Model:      "gpt-4o-mini",
		MaxRetries: 3,
		Timeout:    30 * time.Second,
	}
}

// AdvisorClient implements port.AdvisorClient against an OpenAI-compatible
// chat-completions API, with bounded exponential backoff on transient
// failures.
type AdvisorClient struct {
	cfg    AdvisorConfig
	client *http.Client
}

// NewAdvisorClient creates the client.
func NewAdvisorClient(cfg AdvisorConfig) *AdvisorClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &AdvisorClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Ask sends the grounding as the system message and the question as the user
// message. Rate limits, 5xx responses, and network errors are retried with
// exponential backoff up to MaxRetries; other API errors fail immediately.
func (c *AdvisorClient) Ask(ctx context.Context, grounding, question string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: grounding},
			{Role: "user", Content: question},
		},
		MaxTokens: 500,
	})
	if err != nil {
		return "", fmt.Errorf("marshal advisor request: %w", err)
	}

	var reply string
	operation := func() error {
		r, err := c.attempt(ctx, payload)
		if err != nil {
			return err
		}
		reply = r
		return nil
	}

	retries := c.cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}
	return reply, nil
}

func (c *AdvisorClient) attempt(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("build advisor request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call advisor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		apiErr := fmt.Errorf("advisor status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", apiErr
		}
		return "", backoff.Permanent(apiErr)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", backoff.Permanent(fmt.Errorf("decode advisor response: %w", err))
	}
	if len(out.Choices) == 0 {
		return "", backoff.Permanent(fmt.Errorf("advisor returned no choices"))
	}
	return out.Choices[0].Message.Content, nil
}
