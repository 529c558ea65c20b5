package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"log/slog"

	coreconfig "github.com/hksports/sportsbuddy/core/config"
	"github.com/hksports/sportsbuddy/core/logger"
)

const defaultTimeout = 30 * time.Second

// Client talks to a hosted chat-completions deployment. The endpoint follows
// the Azure deployment scheme: {base}/deployments/{model}/chat/completions/?api-version={v}
// with the access token passed via the api-key header.
type Client struct {
	baseURL    string
	token      string
	model      string
	apiVersion string
	httpClient *http.Client
}

// NewClient builds a Client from the chatgpt config section.
func NewClient(cfg coreconfig.ChatGPTConfig) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.AccessToken,
		model:      cfg.Model,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Messages []message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Submit sends a single user message and returns the assistant reply text.
func (c *Client) Submit(ctx context.Context, content string) (string, error) {
	url := fmt.Sprintf("%s/deployments/%s/chat/completions/?api-version=%s",
		c.baseURL, c.model, c.apiVersion)

	body, err := json.Marshal(completionRequest{
		Messages: []message{{Role: "user", Content: content}},
	})
	if err != nil {
		return "", fmt.Errorf("llm: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LLM.Error("completion call failed",
			slog.String("event", "llm.submit"),
			slog.String("model", c.model),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.LLM.Error("completion call rejected",
			slog.String("event", "llm.submit"),
			slog.String("model", c.model),
			slog.Int("http_status", resp.StatusCode),
			slog.String("body", logger.SanitizeLimit(string(raw), 256)),
		)
		return "", fmt.Errorf("llm: unexpected status %d", resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm: empty choices in response")
	}

	logger.LLM.Debug("completion ok",
		slog.String("event", "llm.submit"),
		slog.String("model", c.model),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return parsed.Choices[0].Message.Content, nil
}
