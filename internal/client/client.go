// Package client provides a small HTTP client for the chatshare API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chatshare: %d %s", e.StatusCode, e.Message)
}

// Session is the response of a session creation.
type Session struct {
	SessionID string `json:"sessionId"`
	CreatedAt string `json:"createdAt"`
}

// ChatConfig is a stored chat config.
type ChatConfig struct {
	ChatConfigID string      `json:"chatConfigId"`
	Model        string      `json:"model"`
	SystemPrompt string      `json:"systemPrompt"`
	Temperature  json.Number `json:"temperature"`
	Title        string      `json:"title"`
}

// Client talks to a chatshare server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// GetChatConfig fetches a config by id.
func (c *Client) GetChatConfig(ctx context.Context, chatConfigID string) (*ChatConfig, error) {
	var out ChatConfig
	if err := c.do(ctx, http.MethodGet, "/chat-configs/"+chatConfigID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSession starts a session from a config.
func (c *Client) CreateSession(ctx context.Context, chatConfigID string) (*Session, error) {
	var out Session
	body := map[string]string{"chat_config_id": chatConfigID}
	if err := c.do(ctx, http.MethodPost, "/sessions", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMessage sends a user message and returns the model's reply.
func (c *Client) SendMessage(ctx context.Context, sessionID, message string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	body := map[string]string{"session_id": sessionID, "message": message}
	if err := c.do(ctx, http.MethodPost, "/messages", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return errors.Wrap(err, "encode request")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
