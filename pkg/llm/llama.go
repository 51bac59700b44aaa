package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds completion client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string        `env:"LLAMA_API_KEY"`
	BaseURL     string        `env:"LLAMA_BASE_URL" envDefault:"https://api.llama.com/compat/v1"`
	Model       string        `env:"LLAMA_MODEL" envDefault:"Llama-3.3-70B-Instruct"`
	MaxTokens   int           `env:"LLAMA_MAX_TOKENS" envDefault:"1000"`
	Temperature float32       `env:"LLAMA_TEMPERATURE" envDefault:"0.7"`
	Timeout     time.Duration `env:"LLAMA_TIMEOUT" envDefault:"60s"`
}

// ErrNoAPIKey indicates the client was constructed without a credential.
var ErrNoAPIKey = errors.New("llm: API key is required")

// LlamaClient talks to an OpenAI-compatible chat completions endpoint.
type LlamaClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float32
}

var _ CompletionClient = (*LlamaClient)(nil)

// NewLlamaClient creates a completion client. Returns ErrNoAPIKey when the
// credential is missing so callers can degrade to fallback content instead
// of carrying a half-configured client around.
func NewLlamaClient(cfg Config) (*LlamaClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.llama.com/compat/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "Llama-3.3-70B-Instruct"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &LlamaClient{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Chat completions request/response structures (OpenAI compatible).
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage,omitempty"`
}

// Complete sends the prompt and returns the assistant's text.
func (c *LlamaClient) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	reqBody := chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("llm: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("llm: completion API returned status %d: %s", resp.StatusCode, string(detail))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("llm: failed to decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("llm: received no choices from completion API")
	}

	return completion.Choices[0].Message.Content, nil
}

// Health checks provider availability with a minimal completion call.
func (c *LlamaClient) Health(ctx context.Context) error {
	if _, err := c.Complete(ctx, "", "ping"); err != nil {
		return fmt.Errorf("llm: health check failed: %w", err)
	}
	return nil
}
