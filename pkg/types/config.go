// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout. Expiry is treated like any other
	// provider failure and takes the tier-fallback path.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with API requests
	// (e.g. "search-agent/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds settings for the capability provider.
type AIConfig struct {
	// Model is the base model identifier (e.g. "gpt-4o"). The grounded tier
	// derives its model id from this value.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the provider API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// AgentConfig groups all settings for one agent instance, including the
// per-stage completion budgets. Zero budgets are replaced with defaults
// when the agent is constructed.
type AgentConfig struct {
	AIConfig   `yaml:",inline"`
	HTTPConfig `yaml:",inline"`

	// ClassifyMaxTokens bounds the intent-classification reply (default 10).
	ClassifyMaxTokens int `json:"classify_max_tokens" yaml:"classify_max_tokens"`

	// ExtractMaxTokens bounds the company-name reply (default 50).
	ExtractMaxTokens int `json:"extract_max_tokens" yaml:"extract_max_tokens"`

	// ResolveMaxTokens bounds the website-lookup reply (default 100).
	ResolveMaxTokens int `json:"resolve_max_tokens" yaml:"resolve_max_tokens"`

	// CategoryMaxTokens bounds each category lookup reply (default 1000).
	CategoryMaxTokens int `json:"category_max_tokens" yaml:"category_max_tokens"`

	// CompileMaxTokens bounds the synthesized report (default 2000).
	CompileMaxTokens int `json:"compile_max_tokens" yaml:"compile_max_tokens"`

	// AnswerMaxTokens bounds the direct answer on the simple path.
	// Zero means no explicit bound is sent.
	AnswerMaxTokens int `json:"answer_max_tokens" yaml:"answer_max_tokens"`
}
