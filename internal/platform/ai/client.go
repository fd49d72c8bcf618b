package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Completer is the contract the chat service depends on. A nil or failing
// Completer is never fatal: the caller falls back to the deterministic
// triage classifier.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds hosted-model client settings.
type Config struct {
	Provider      string // "openai" (OpenAI-compatible HTTP API), "gemini", or "disabled"
	BaseURL       string
	APIKey        string
	PrimaryModel  string
	FallbackModel string
	Timeout       time.Duration
}

// Client calls a hosted text-generation API. Complete tries the primary
// model first and the fallback model second; any remaining error is the
// caller's signal to use the local classifier instead.
type Client struct {
	cfg          Config
	httpClient   *http.Client
	geminiClient *genai.Client
	logger       zerolog.Logger
}

// ErrDisabled is returned when the assistant provider is configured off.
var ErrDisabled = fmt.Errorf("assistant provider disabled")

func NewClient(ctx context.Context, cfg Config, logger zerolog.Logger) (*Client, error) {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}

	switch cfg.Provider {
	case "openai":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("base URL required for openai provider")
		}
	case "gemini":
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		c.geminiClient = gc
	case "disabled":
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return c, nil
}

// Complete generates a completion for prompt, trying the primary model and
// then the fallback model. Errors are logged and returned; they carry no
// user-facing meaning.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Provider == "disabled" {
		return "", ErrDisabled
	}

	text, err := c.completeWithModel(ctx, c.cfg.PrimaryModel, prompt)
	if err == nil {
		return text, nil
	}
	c.logger.Warn().Err(err).Str("model", c.cfg.PrimaryModel).Msg("primary model failed, trying fallback")

	if c.cfg.FallbackModel == "" || c.cfg.FallbackModel == c.cfg.PrimaryModel {
		return "", err
	}

	text, err2 := c.completeWithModel(ctx, c.cfg.FallbackModel, prompt)
	if err2 == nil {
		return text, nil
	}
	c.logger.Warn().Err(err2).Str("model", c.cfg.FallbackModel).Msg("fallback model failed")

	return "", fmt.Errorf("all models failed: %w", err2)
}

func (c *Client) completeWithModel(ctx context.Context, model, prompt string) (string, error) {
	switch c.cfg.Provider {
	case "gemini":
		return c.completeGemini(ctx, model, prompt)
	default:
		return c.completeOpenAI(ctx, model, prompt)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) completeOpenAI(ctx context.Context, model, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("API key not configured")
	}

	request := chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	text := strings.TrimSpace(response.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

func (c *Client) completeGemini(ctx context.Context, model, prompt string) (string, error) {
	if c.geminiClient == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	content := genai.NewContentFromText(prompt, genai.RoleUser)
	resp, err := c.geminiClient.Models.GenerateContent(ctx, model, []*genai.Content{content}, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	var result strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			result.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(result.String())
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}
