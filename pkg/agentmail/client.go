// Package agentmail is a client for the AgentMail HTTP API: programmatic
// inbox provisioning plus message send/list/get. The hosted service has no
// official Go SDK, so this wraps the REST surface directly.
package agentmail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds AgentMail client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string        `env:"AGENTMAIL_API_KEY"`
	BaseURL string        `env:"AGENTMAIL_BASE_URL" envDefault:"https://api.agentmail.to/v0"`
	Timeout time.Duration `env:"AGENTMAIL_TIMEOUT" envDefault:"30s"`
}

// ErrNoAPIKey indicates the client was constructed without a credential.
var ErrNoAPIKey = errors.New("agentmail: API key is required")

// Client calls the AgentMail REST API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// New creates an AgentMail client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.agentmail.to/v0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// CreateInbox provisions a brand-new inbox. The service assigns the address
// when no domain preference is given.
func (c *Client) CreateInbox(ctx context.Context) (*Inbox, error) {
	var inbox Inbox
	if err := c.do(ctx, http.MethodPost, "/inboxes", struct{}{}, &inbox); err != nil {
		return nil, fmt.Errorf("agentmail: failed to create inbox: %w", err)
	}
	return &inbox, nil
}

// ListInboxes returns all inboxes owned by the credential.
func (c *Client) ListInboxes(ctx context.Context) ([]Inbox, error) {
	var resp ListInboxesResponse
	if err := c.do(ctx, http.MethodGet, "/inboxes", nil, &resp); err != nil {
		return nil, fmt.Errorf("agentmail: failed to list inboxes: %w", err)
	}
	return resp.Inboxes, nil
}

// SendMessage sends one message from the given inbox.
func (c *Client) SendMessage(ctx context.Context, inboxID string, params SendMessageParams) (*SendMessageResponse, error) {
	if inboxID == "" {
		return nil, errors.New("agentmail: inbox id is required")
	}
	var resp SendMessageResponse
	path := "/inboxes/" + url.PathEscape(inboxID) + "/messages/send"
	if err := c.do(ctx, http.MethodPost, path, params, &resp); err != nil {
		return nil, fmt.Errorf("agentmail: failed to send message from %s: %w", inboxID, err)
	}
	return &resp, nil
}

// ListMessages returns the messages stored in an inbox.
func (c *Client) ListMessages(ctx context.Context, inboxID string) ([]Message, error) {
	if inboxID == "" {
		return nil, errors.New("agentmail: inbox id is required")
	}
	var resp ListMessagesResponse
	path := "/inboxes/" + url.PathEscape(inboxID) + "/messages"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("agentmail: failed to list messages for %s: %w", inboxID, err)
	}
	return resp.Messages, nil
}

// GetMessage retrieves a single message.
func (c *Client) GetMessage(ctx context.Context, inboxID, messageID string) (*Message, error) {
	if inboxID == "" || messageID == "" {
		return nil, errors.New("agentmail: inbox id and message id are required")
	}
	var msg Message
	path := "/inboxes/" + url.PathEscape(inboxID) + "/messages/" + url.PathEscape(messageID)
	if err := c.do(ctx, http.MethodGet, path, nil, &msg); err != nil {
		return nil, fmt.Errorf("agentmail: failed to get message %s: %w", messageID, err)
	}
	return &msg, nil
}

// Health verifies the credential by listing inboxes.
func (c *Client) Health(ctx context.Context) error {
	if _, err := c.ListInboxes(ctx); err != nil {
		return fmt.Errorf("agentmail: health check failed: %w", err)
	}
	return nil
}

// do executes one API call, encoding body as JSON when present and decoding
// the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
