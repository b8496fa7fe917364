// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/search-agent/internal/provider"
	"github.com/pdiddy/search-agent/pkg/types"
)

const classifyPrompt = `You are an AI assistant that determines whether a user query requires:
1. A simple answer that can be provided with a quick web search
2. A detailed research about a company, requiring multiple searches and analysis

If the query mentions a specific company and asks about its products, features, pricing,
customers, or market positioning, classify it as "research".

Otherwise, classify it as "simple".

Respond with ONLY "simple" or "research".`

// Classify labels the query as simple or research. Classification failure
// never aborts the pipeline: a provider error defaults to simple, which only
// narrows functionality.
func (a *Agent) Classify(ctx context.Context, query string) types.Intent {
	c, err := a.provider.Complete(ctx, provider.TierPlain, classifyPrompt, query, a.cfg.ClassifyMaxTokens)
	if err != nil {
		fmt.Fprintf(a.log, "warning: classify: %v, defaulting to simple\n", err)
		return types.IntentSimple
	}
	return interpretIntent(c.Text)
}

// interpretIntent parses the raw classifier reply. Best-effort by design:
// any reply containing "research" (case-insensitive) means research,
// anything else, including empty or malformed replies, means simple.
func interpretIntent(reply string) types.Intent {
	if strings.Contains(strings.ToLower(reply), "research") {
		return types.IntentResearch
	}
	return types.IntentSimple
}
