// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/search-agent/internal/provider"
	"github.com/pdiddy/search-agent/pkg/types"
)

const compilePromptFmt = `You are a business analyst creating a comprehensive research report about %s.

Based on the provided research data, create a well-structured report that covers:
1. Company Overview
2. Target Customers and Audience
3. Products and Services
4. Key Features and Capabilities
5. Pricing Structure
6. Market Positioning and Competitive Analysis
7. Summary and Insights

Use markdown formatting for better readability.
Maintain factual accuracy and cite sources where appropriate.`

// compileErrText is surfaced as the report when the synthesis call fails.
// Compilation is the terminal stage, so its failure must be user-visible
// rather than silently swallowed.
const compileErrText = "Error generating research report. Please try again."

// CompileReport merges all category texts under markdown headings and
// synthesizes the final structured report in one plain-tier call.
func (a *Agent) CompileReport(ctx context.Context, company string, bundle types.ResearchBundle) string {
	combined := combineSections(bundle)
	system := fmt.Sprintf(compilePromptFmt, company)

	c, err := a.provider.Complete(ctx, provider.TierPlain, system, combined, a.cfg.CompileMaxTokens)
	if err != nil {
		fmt.Fprintf(a.log, "warning: compile report: %v\n", err)
		return compileErrText
	}
	return c.Text
}

// combineSections concatenates the bundle's category texts in fixed category
// order, each under a title-cased markdown heading, so the synthesized
// report's section order is deterministic.
func combineSections(bundle types.ResearchBundle) string {
	sections := make([]string, 0, len(bundle))
	for _, cat := range types.Categories() {
		sections = append(sections, fmt.Sprintf("## %s\n%s", titleCase(string(cat)), bundle[cat].Text))
	}
	return strings.Join(sections, "\n\n")
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
