// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/search-agent/internal/provider"
)

const extractPrompt = `Extract the company name from the following query.
If there is no specific company mentioned, respond with "None".
Respond with ONLY the company name or "None".`

// ExtractCompany pulls the company name out of a research-flagged query.
// The second return is false when no company was identified, either because
// the model answered the "None" sentinel or because the call failed; the
// orchestrator reroutes to the simple path in that case.
func (a *Agent) ExtractCompany(ctx context.Context, query string) (string, bool) {
	c, err := a.provider.Complete(ctx, provider.TierPlain, extractPrompt, query, a.cfg.ExtractMaxTokens)
	if err != nil {
		fmt.Fprintf(a.log, "warning: extract: %v\n", err)
		return "", false
	}
	return interpretCompany(c.Text)
}

// interpretCompany parses the raw extractor reply. An exact case-insensitive
// "none" (or an empty reply) signals absence; any other reply is used
// verbatim as the company name, with no further validation.
func interpretCompany(reply string) (string, bool) {
	name := strings.TrimSpace(reply)
	if name == "" || strings.EqualFold(name, "none") {
		return "", false
	}
	return name, true
}
