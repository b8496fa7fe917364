// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/search-agent/pkg/types"
)

func testClient(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orig := chatCompletionsURL
	chatCompletionsURL = srv.URL
	t.Cleanup(func() { chatCompletionsURL = orig })

	return NewOpenAI(types.AgentConfig{
		AIConfig:   types.AIConfig{Model: "gpt-4o", APIKey: "sk-test"},
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "search-agent/test"},
	})
}

func completionBody(text string, tokens int) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": text}},
		},
		"usage": map[string]any{"total_tokens": tokens},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestCompleteGroundedTier(t *testing.T) {
	var gotReq chatRequest
	var gotAuth, gotUA string

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Write([]byte(completionBody("Paris is the capital of France.", 57)))
	})

	got, err := c.Complete(context.Background(), TierGrounded, "be helpful", "capital of France?", 100)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if gotReq.Model != "gpt-4o-search-preview" {
		t.Errorf("request model = %q, want search-preview variant", gotReq.Model)
	}
	if gotReq.MaxTokens != 100 {
		t.Errorf("request max_tokens = %d, want 100", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotUA != "search-agent/test" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if got.Text != "Paris is the capital of France." {
		t.Errorf("Text = %q", got.Text)
	}
	if got.TokensUsed != 57 {
		t.Errorf("TokensUsed = %d, want 57", got.TokensUsed)
	}
	if got.Model != "gpt-4o-search-preview" {
		t.Errorf("Model = %q", got.Model)
	}
}

func TestCompletePlainTier(t *testing.T) {
	var gotReq chatRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(completionBody("ok", 3)))
	})

	got, err := c.Complete(context.Background(), TierPlain, "sys", "user", 0)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if gotReq.Model != "gpt-4o" {
		t.Errorf("request model = %q, want base model", gotReq.Model)
	}
	if got.Model != "gpt-4o" {
		t.Errorf("Model = %q", got.Model)
	}
}

func TestCompleteAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "model not found"}}`, http.StatusNotFound)
	})

	_, err := c.Complete(context.Background(), TierGrounded, "sys", "user", 10)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *provider.Error", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": [], "usage": {"total_tokens": 0}}`))
	})

	_, err := c.Complete(context.Background(), TierPlain, "sys", "user", 10)
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteNetworkError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {})
	// Point at a closed server to force a transport failure.
	srv := httptest.NewServer(http.NotFoundHandler())
	chatCompletionsURL = srv.URL
	srv.Close()

	_, err := c.Complete(context.Background(), TierPlain, "sys", "user", 10)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *provider.Error", err)
	}
}

func TestModelFor(t *testing.T) {
	c := NewOpenAI(types.AgentConfig{AIConfig: types.AIConfig{Model: "gpt-4o"}})
	if got := c.ModelFor(TierGrounded); got != "gpt-4o-search-preview" {
		t.Errorf("ModelFor(grounded) = %q", got)
	}
	if got := c.ModelFor(TierPlain); got != "gpt-4o" {
		t.Errorf("ModelFor(plain) = %q", got)
	}
}

func TestTierString(t *testing.T) {
	if TierGrounded.String() != "grounded" || TierPlain.String() != "plain" {
		t.Errorf("Tier strings = %q, %q", TierGrounded, TierPlain)
	}
}
