// Package llm calls OpenAI-compatible chat-completion endpoints.
//
// Every supported provider speaks the same wire format, so one client
// covers them all; only the base URL, API key and model differ. Requests
// are single-shot with no retry: a failed generation surfaces immediately
// and the caller decides what to do with the run.
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
)

// Generator produces text from a prompt. Agents depend on this interface
// so tests can substitute a canned implementation.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config selects the endpoint and generation parameters for a Client.
type Config struct {
	BaseURL         string
	APIKey          string
	Model           string
	Temperature     float64
	ReasoningEffort string // omitted from requests when empty or "none"
}

// Client is a Generator backed by an HTTP chat-completions endpoint.
type Client struct {
	cfg Config
}

// Generation can be slow on large prompts; the timeout is generous.
var httpClient = &http.Client{Timeout: 5 * time.Minute}

const maxErrorBody = 2048

// New validates the configuration and returns a ready client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model           string        `json:"model"`
	Messages        []chatMessage `json:"messages"`
	Temperature     float64       `json:"temperature"`
	ReasoningEffort string        `json:"reasoning_effort,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as a single user message and returns the first
// choice's content. Any transport failure, non-200 status, or empty answer
// is an error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.cfg.Temperature,
	}
	if c.cfg.ReasoningEffort != "" && c.cfg.ReasoningEffort != "none" {
		body.ReasoningEffort = c.cfg.ReasoningEffort
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", c.cfg.BaseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("generation failed: %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices")
	}
	content := parsed.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("response contained no content")
	}
	return content, nil
}
