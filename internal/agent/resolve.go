// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pdiddy/search-agent/internal/provider"
)

const resolvePrompt = "You are a helpful assistant that finds official company websites. Respond with ONLY the URL of the official website."

// urlPattern matches http/https URLs with an optional www. prefix, a TLD of
// 1-6 characters, and an optional path/query tail.
var urlPattern = regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_\+.~#?&//=]*)`)

// ResolveWebsite finds the company's official website via a grounded lookup
// with a plain fallback. When the reply contains no recognizable URL the
// trimmed reply text is returned as a best-effort reference; downstream
// treats it as advisory only. The result is empty only when both tiers fail.
func (a *Agent) ResolveWebsite(ctx context.Context, company string) string {
	search := company + " official website"

	call := func(tier provider.Tier) func() (provider.Completion, error) {
		return func() (provider.Completion, error) {
			return a.provider.Complete(ctx, tier, resolvePrompt, search, a.cfg.ResolveMaxTokens)
		}
	}

	c, err := a.withFallback("resolve website", call(provider.TierGrounded), call(provider.TierPlain))
	if err != nil {
		fmt.Fprintf(a.log, "warning: resolve website: both tiers failed: %v\n", err)
		return ""
	}

	return interpretWebsite(c.Text)
}

// interpretWebsite extracts the first URL from the reply; when no URL
// pattern matches it falls back to the trimmed raw text.
func interpretWebsite(reply string) string {
	if u := urlPattern.FindString(reply); u != "" {
		return u
	}
	return strings.TrimSpace(reply)
}

// siteScope derives a "site:<host>" search hint from a resolved reference.
// References with no recognizable URL yield no scope, so category lookups
// run unscoped rather than failing.
func siteScope(reference string) string {
	if !strings.Contains(reference, "http") {
		return ""
	}
	u, err := url.Parse(urlPattern.FindString(reference))
	if err != nil || u.Host == "" {
		return ""
	}
	return "site:" + u.Host
}
