// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/search-agent/pkg/types"
)

// chatCompletionsURL is the OpenAI chat completions endpoint. Package-level
// var for test substitution.
var chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// groundedSuffix derives the web-search model id from the base model
// (e.g. "gpt-4o" → "gpt-4o-search-preview").
const groundedSuffix = "-search-preview"

const defaultTimeout = 60 * time.Second

// OpenAI implements Completer against the OpenAI chat completions API.
// The grounded tier targets the search-preview variant of the configured
// model; the plain tier targets the model itself.
type OpenAI struct {
	apiKey    string
	model     string
	userAgent string
	client    *http.Client
}

// NewOpenAI builds a client from the agent configuration. A zero timeout
// falls back to 60 seconds so no call can hang indefinitely.
func NewOpenAI(cfg types.AgentConfig) *OpenAI {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OpenAI{
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// chatMessage is a single message in the chat completions conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the chat completions response the agent uses.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// ModelFor returns the concrete model id used for a tier.
func (c *OpenAI) ModelFor(tier Tier) string {
	if tier == TierGrounded {
		return c.model + groundedSuffix
	}
	return c.model
}

// Complete issues one chat completion. Any transport or API failure is
// returned as a *Error; the caller decides whether to fall back.
func (c *OpenAI) Complete(ctx context.Context, tier Tier, system, user string, maxTokens int) (Completion, error) {
	model := c.ModelFor(tier)
	op := fmt.Sprintf("%s completion (%s)", tier, model)

	reqBody := chatRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return Completion{}, &Error{Op: op, Err: fmt.Errorf("marshaling request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatCompletionsURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return Completion{}, &Error{Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Completion{}, &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Completion{}, &Error{Op: op, Err: fmt.Errorf("API returned %d: %s", resp.StatusCode, string(body))}
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return Completion{}, &Error{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}

	if len(cResp.Choices) == 0 {
		return Completion{}, &Error{Op: op, Err: fmt.Errorf("response contained no choices")}
	}

	return Completion{
		Text:       cResp.Choices[0].Message.Content,
		TokensUsed: cResp.Usage.TotalTokens,
		Model:      model,
	}, nil
}
