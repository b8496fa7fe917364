// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent implements the query pipeline: intent classification,
// company extraction, website resolution, category research, and report
// compilation. Every stage degrades on provider failure instead of
// aborting, so Process always reaches a terminal result.
package agent

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/search-agent/internal/provider"
	"github.com/pdiddy/search-agent/pkg/types"
)

// Default per-stage completion budgets, applied when the config leaves
// them zero.
const (
	defaultClassifyMaxTokens = 10
	defaultExtractMaxTokens  = 50
	defaultResolveMaxTokens  = 100
	defaultCategoryMaxTokens = 1000
	defaultCompileMaxTokens  = 2000
)

// Agent runs the pipeline against an injected capability provider.
// Progress and fallback warnings are written to log; pass nil to discard.
type Agent struct {
	provider provider.Completer
	cfg      types.AgentConfig
	log      io.Writer
}

// New builds an agent. Zero token budgets in cfg are replaced with defaults.
func New(p provider.Completer, cfg types.AgentConfig, log io.Writer) *Agent {
	if log == nil {
		log = io.Discard
	}
	if cfg.ClassifyMaxTokens <= 0 {
		cfg.ClassifyMaxTokens = defaultClassifyMaxTokens
	}
	if cfg.ExtractMaxTokens <= 0 {
		cfg.ExtractMaxTokens = defaultExtractMaxTokens
	}
	if cfg.ResolveMaxTokens <= 0 {
		cfg.ResolveMaxTokens = defaultResolveMaxTokens
	}
	if cfg.CategoryMaxTokens <= 0 {
		cfg.CategoryMaxTokens = defaultCategoryMaxTokens
	}
	if cfg.CompileMaxTokens <= 0 {
		cfg.CompileMaxTokens = defaultCompileMaxTokens
	}
	return &Agent{provider: p, cfg: cfg, log: log}
}

// Process answers a query either directly or through the company research
// workflow. It never returns an error: provider failures narrow the result
// (a defaulted classification, an unscoped lookup, a placeholder category)
// rather than aborting. The returned record owns no shared state, so
// concurrent invocations are independent.
func (a *Agent) Process(ctx context.Context, query string) types.Result {
	if a.Classify(ctx, query) == types.IntentSimple {
		return a.answerSimple(ctx, query)
	}

	company, ok := a.ExtractCompany(ctx, query)
	if !ok {
		// No company to research; answer the original query directly.
		fmt.Fprintf(a.log, "no company found in query, answering directly\n")
		return a.answerSimple(ctx, query)
	}

	website := a.ResolveWebsite(ctx, company)
	bundle := a.ResearchCategories(ctx, company, website)
	report := a.CompileReport(ctx, company, bundle)

	return types.Result{
		QueryType:       types.IntentResearch,
		OriginalQuery:   query,
		CompanyName:     company,
		OfficialWebsite: website,
		ResearchReport:  report,
		ResearchData:    bundle.Texts(),
		ModelsUsed:      bundle.ModelsUsed(),
	}
}

const (
	answerGroundedPrompt = "You are a helpful assistant that provides accurate, concise answers using web search."
	answerPlainPrompt    = "You are a helpful assistant that provides accurate, concise answers."

	// answerErrText is the safe default when both tiers fail on the
	// simple path; there is no later stage to recover in.
	answerErrText = "Error answering query. Please try again."
)

// answerSimple resolves the simple path: one grounded call with a plain
// fallback, terminal in either case.
func (a *Agent) answerSimple(ctx context.Context, query string) types.Result {
	c, err := a.withFallback("answer",
		func() (provider.Completion, error) {
			return a.provider.Complete(ctx, provider.TierGrounded, answerGroundedPrompt, query, a.cfg.AnswerMaxTokens)
		},
		func() (provider.Completion, error) {
			return a.provider.Complete(ctx, provider.TierPlain, answerPlainPrompt, query, a.cfg.AnswerMaxTokens)
		})
	if err != nil {
		fmt.Fprintf(a.log, "warning: answer: both tiers failed: %v\n", err)
		return types.Result{
			QueryType:     types.IntentSimple,
			OriginalQuery: query,
			Response:      answerErrText,
			ModelUsed:     a.cfg.Model,
		}
	}

	return types.Result{
		QueryType:     types.IntentSimple,
		OriginalQuery: query,
		Response:      c.Text,
		TokensUsed:    c.TokensUsed,
		ModelUsed:     c.Model,
	}
}
