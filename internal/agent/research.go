// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"fmt"

	"github.com/pdiddy/search-agent/internal/provider"
	"github.com/pdiddy/search-agent/pkg/types"
)

const categoryPromptFmt = `You are a research assistant gathering information about %s's %s.
Provide detailed, factual information based on web search results.
Include specific details when available.
Cite your sources with URLs when possible.`

// ResearchCategories issues one grounded lookup per fixed category, scoped
// to the resolved website when one is available. The returned bundle always
// contains every category: a lookup whose both tiers fail is recorded as a
// placeholder slot, never omitted.
func (a *Agent) ResearchCategories(ctx context.Context, company, website string) types.ResearchBundle {
	scope := siteScope(website)
	bundle := make(types.ResearchBundle, len(types.Categories()))

	for _, cat := range types.Categories() {
		search := company + " " + string(cat)
		if scope != "" {
			search += " " + scope
		}
		system := fmt.Sprintf(categoryPromptFmt, company, cat)

		fmt.Fprintf(a.log, "researching %s\n", cat)

		call := func(tier provider.Tier) func() (provider.Completion, error) {
			return func() (provider.Completion, error) {
				return a.provider.Complete(ctx, tier, system, search, a.cfg.CategoryMaxTokens)
			}
		}

		c, err := a.withFallback("research "+string(cat), call(provider.TierGrounded), call(provider.TierPlain))
		if err != nil {
			fmt.Fprintf(a.log, "warning: research %s: both tiers failed: %v\n", cat, err)
			bundle[cat] = types.CategoryResult{
				Text:      fmt.Sprintf("Error retrieving %s information.", cat),
				ModelUsed: a.cfg.Model,
				Failed:    true,
			}
			continue
		}

		bundle[cat] = types.CategoryResult{Text: c.Text, ModelUsed: c.Model}
	}

	return bundle
}
