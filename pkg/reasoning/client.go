// Package reasoning provides the client for the external reasoning service
// (an OpenAI-compatible chat-completions API in JSON mode). Callers hand it a
// task description and structured input and get back the raw JSON payload;
// strict decoding and field validation happen at each caller's boundary.
package reasoning

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

const defaultTimeoutSeconds = 60

var (
	// ErrModelRequired is returned when the client is constructed without a
	// model name.
	ErrModelRequired = errors.New("reasoning model is required")
	// ErrEmptyCompletion is returned when the service responds without any
	// choices.
	ErrEmptyCompletion = errors.New("reasoning service returned no choices")
)

// Config carries the reasoning service's connection settings.
type Config struct {
	APIURL string
	APIKey string
	Model  string
}

// Completer is the surface the strategist and creative generator consume.
type Completer interface {
	CompleteJSON(ctx context.Context, system, user string) ([]byte, error)
}

// Client is an OpenAI-compatible chat-completions client. Requests always ask
// for a json_object response so the payload can be schema-checked downstream.
type Client struct {
	client *http.Client
	apiURL string
	apiKey string
	model  string
}

func NewClient(cfg Config) *Client {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1"
	}

	return &Client{
		client: &http.Client{Timeout: defaultTimeoutSeconds * time.Second},
		apiURL: apiURL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CompleteJSON sends a system/user message pair and returns the first
// choice's content bytes.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) ([]byte, error) {
	if c.model == "" {
		return nil, ErrModelRequired
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("reasoning: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("reasoning: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reasoning: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)

		return nil, fmt.Errorf("reasoning: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var decoded chatResponse

	err = json.NewDecoder(resp.Body).Decode(&decoded)
	if err != nil {
		return nil, fmt.Errorf("reasoning: decode response: %w", err)
	}

	if len(decoded.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	return []byte(decoded.Choices[0].Message.Content), nil
}
