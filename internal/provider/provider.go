// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider defines the capability-provider boundary: text generation
// with or without live web-search grounding. The pipeline depends only on the
// Completer interface so tests can supply deterministic stubs.
package provider

import "context"

// Tier selects the capability flavor for one completion call.
type Tier int

const (
	// TierGrounded augments generation with live web-search results.
	TierGrounded Tier = iota

	// TierPlain is text generation without web augmentation, used as the
	// fallback when the grounded tier fails.
	TierPlain
)

func (t Tier) String() string {
	switch t {
	case TierGrounded:
		return "grounded"
	case TierPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Completion is the outcome of one successful completion call. Model records
// the concrete model id that answered, which differs per tier.
type Completion struct {
	Text       string
	TokensUsed int
	Model      string
}

// Completer issues one completion per call. Implementations must be safe for
// concurrent use; the pipeline itself never shares state across invocations.
type Completer interface {
	Complete(ctx context.Context, tier Tier, system, user string, maxTokens int) (Completion, error)
}

// Error wraps any provider call failure: network, auth, rate limit, or an
// unavailable model. Callers do not distinguish sub-kinds, only success
// versus failure.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "provider: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
